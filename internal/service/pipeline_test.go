package service

import (
	"context"
	"strings"
	"testing"

	llmMocks "sopclassify/internal/llm/mocks"
	"sopclassify/internal/model"
	"sopclassify/internal/repository/fs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// End-to-end over a real filesystem repository with only the model stubbed:
// one SOP on disk, a well-formed model reply, and the reply's object must
// come back exactly as the result.
func TestClassificationPipeline_EndToEnd(t *testing.T) {
	ctx := context.Background()

	repo, err := fs.NewSopFS(t.TempDir())
	require.NoError(t, err)

	sopText := "Release SOP v1.0\nSection 2: Any change touching payments requires Slow Release."
	_, err = repo.Store(ctx, "release-sop.txt", []byte(sopText))
	require.NoError(t, err)

	modelReply := `Here is my analysis:
{"isSlowRelease":true,"justification":"Payment flow changes fall under Section 2.","referencedSections":["Section 2"],"metadata":{"title":"Release SOP","version":"1.0"}}`

	mLLM := new(llmMocks.MockTextModel)
	mLLM.On("Generate", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, sopText) && strings.Contains(prompt, "Add a new button")
	})).Return(modelReply, nil)

	svc := NewClassificationService(repo, mLLM, nil, nil)

	res, err := svc.ClassifyText(ctx, "Add a new button")
	require.NoError(t, err)

	assert.Equal(t, &model.ClassificationResult{
		IsSlowRelease:      true,
		Justification:      "Payment flow changes fall under Section 2.",
		ReferencedSections: []string{"Section 2"},
		Metadata:           model.SopMetadata{Title: "Release SOP", Version: "1.0"},
	}, res)

	mLLM.AssertExpectations(t)
}
