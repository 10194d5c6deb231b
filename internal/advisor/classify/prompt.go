package classify

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"
)

//go:embed template/extraction_prompt.txt
var extractionSystemPrompt string

// renderExtractionMessages renders the system + user messages for the
// structured-extraction call via the Eino prompt component, so prompt
// callbacks fire the same way they do for any other model invocation.
func renderExtractionMessages(ctx context.Context, vehicleText string) ([]*schema.Message, error) {
	// Render known tokens with a replacer to avoid fighting the JSON braces
	// in the template.
	content := strings.NewReplacer(
		"{types}", providerTypeList(),
	).Replace(extractionSystemPrompt)

	tpl := prompt.FromMessages(
		schema.FString,
		schema.MessagesPlaceholder("extraction_messages", false),
	)
	msgs, err := tpl.Format(ctx, map[string]any{
		"extraction_messages": []*schema.Message{
			schema.SystemMessage(content),
			schema.UserMessage("입력: " + vehicleText),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("extraction prompt render: %w", err)
	}
	if len(msgs) == 0 {
		return nil, fmt.Errorf("extraction prompt render: empty result")
	}
	return msgs, nil
}
