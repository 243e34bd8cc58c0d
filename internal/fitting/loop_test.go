package fitting

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobee/resume-tailor/internal/types"
)

// unitRenderer produces one fake "page" per remaining content unit.
type unitRenderer struct {
	sections *[]*types.Section
	renders  int
	failAt   int
}

func (r *unitRenderer) Render(_ context.Context, _ string) ([]byte, error) {
	r.renders++
	if r.failAt > 0 && r.renders >= r.failAt {
		return nil, errors.New("browser crashed")
	}
	return []byte(fmt.Sprintf("pdf:%d", types.TotalUnits(*r.sections))), nil
}

// unitCounter reads the page count the fake renderer encoded.
type unitCounter struct{ err error }

func (c unitCounter) CountPages(pdf []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	var pages int
	_, scanErr := fmt.Sscanf(string(pdf), "pdf:%d", &pages)
	return pages, scanErr
}

func TestRunFitLoopTrimsUntilBudget(t *testing.T) {
	sections := []*types.Section{
		{Title: "Projects", Entries: []*types.Entry{{Title: "P", Bullets: []string{"a", "b", "c"}}}},
	}
	// 5 units initially (section + entry + 3 bullets); budget 3 forces two trims.
	renderer := &unitRenderer{sections: &sections}
	result, err := RunFitLoop(context.Background(), &sections, func() string { return "doc" }, renderer, unitCounter{}, 3, 0, false)

	require.NoError(t, err)
	assert.True(t, result.Fitted)
	assert.Equal(t, 3, result.Pages)
	assert.Equal(t, 3, result.Iterations)
	assert.Equal(t, []string{"a"}, sections[0].Entries[0].Bullets)
}

func TestRunFitLoopExhaustion(t *testing.T) {
	sections := []*types.Section{
		{Title: "Projects", Entries: []*types.Entry{{Title: "P", Bullets: []string{"a"}}}},
	}
	// 3 units minimum is a titled entry plus its section; budget 1 is unreachable.
	renderer := &unitRenderer{sections: &sections}
	result, err := RunFitLoop(context.Background(), &sections, func() string { return "doc" }, renderer, unitCounter{}, 1, 0, false)

	require.NoError(t, err)
	assert.False(t, result.Fitted)
	assert.Greater(t, result.Pages, 1)
	assert.Empty(t, sections[0].Entries[0].Bullets)
}

func TestRunFitLoopRenderErrorIsFatal(t *testing.T) {
	sections := []*types.Section{{Title: "Projects", Bullets: []string{"a"}}}
	renderer := &unitRenderer{sections: &sections, failAt: 1}
	_, err := RunFitLoop(context.Background(), &sections, func() string { return "doc" }, renderer, unitCounter{}, 1, 0, false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to render PDF")
}

func TestRunFitLoopCountErrorAccepts(t *testing.T) {
	sections := []*types.Section{{Title: "Projects", Bullets: []string{"a", "b"}}}
	renderer := &unitRenderer{sections: &sections}
	result, err := RunFitLoop(context.Background(), &sections, func() string { return "doc" }, renderer, unitCounter{err: errors.New("bad pdf")}, 1, 0, false)

	require.NoError(t, err)
	assert.True(t, result.Fitted)
	assert.Equal(t, 1, result.Iterations)
	// Nothing was trimmed: the unreadable count is treated as fitting.
	assert.Len(t, sections[0].Bullets, 2)
}
