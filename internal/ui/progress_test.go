package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cedar/internal/pipeline"
)

func newModel(files ...string) *progressModel {
	return NewProgressModel("checking", files, nil).(*progressModel)
}

func TestApplyEvents(t *testing.T) {
	m := newModel("a.cedar", "b.cedar")

	m.Update(eventMsg{File: "a.cedar", Stage: pipeline.StageParse, Status: pipeline.StatusWorking})
	assert.InDelta(t, 0.25, m.percent(), 1e-9)

	m.Update(eventMsg{File: "a.cedar", Stage: pipeline.StageParse, Status: pipeline.StatusDone})
	m.Update(eventMsg{File: "b.cedar", Stage: pipeline.StageParse, Status: pipeline.StatusError})
	// неизвестный файл игнорируется
	m.Update(eventMsg{File: "zzz.cedar", Status: pipeline.StatusError})

	finished, failed := m.counts()
	assert.Equal(t, 2, finished)
	assert.Equal(t, 1, failed)
	assert.InDelta(t, 1.0, m.percent(), 1e-9)

	view := m.View()
	assert.Contains(t, view, "checking 2/2, 1 with errors")
	assert.Contains(t, view, "a.cedar")
	assert.Contains(t, view, "error")
	assert.NotContains(t, view, "zzz.cedar")
}

func TestDoneQuits(t *testing.T) {
	m := newModel("a.cedar")
	_, cmd := m.Update(doneMsg{})
	require.NotNil(t, cmd)
	assert.True(t, m.done)
	assert.True(t, strings.Contains(m.View(), "done: checking"))
}

func TestListenReportsClose(t *testing.T) {
	ch := make(chan pipeline.Event, 1)
	m := NewProgressModel("x", []string{"a"}, ch).(*progressModel)
	ch <- pipeline.Event{File: "a", Status: pipeline.StatusDone}
	close(ch)

	msg := m.listenForEvent()()
	ev, ok := msg.(eventMsg)
	require.True(t, ok)
	assert.Equal(t, "a", ev.File)

	_, ok = m.listenForEvent()().(doneMsg)
	assert.True(t, ok)
}

func TestEmptyView(t *testing.T) {
	assert.Empty(t, newModel().View())
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "parsing", statusLabel(pipeline.StageParse, pipeline.StatusWorking))
	assert.Equal(t, "cached", statusLabel(pipeline.StageCache, pipeline.StatusCached))
	assert.Equal(t, "ok", statusLabel(pipeline.StageParse, pipeline.StatusDone))
	assert.Equal(t, "queued", statusLabel(pipeline.StageRead, pipeline.StatusQueued))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 20))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", truncate("abcdef", 2))
	// широкие руны считаются по ширине
	assert.Equal(t, "日本...", truncate("日本語のファイル", 7))
}
