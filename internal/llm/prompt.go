package llm

// extractionPrompt asks for a strict JSON array; the response schema in the
// request enforces the structure on the model side as well.
const extractionPrompt = "Extract all menu items from this image. For each item, provide its name, a brief description, and its price. If a description is not available, create a concise, plausible one. Ensure the output is a valid JSON array of objects, where each object represents a menu item."

// menuSchema is the schema-constrained generation config sent with every
// extraction request.
var menuSchema = map[string]any{
	"type": "ARRAY",
	"items": map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"name":        map[string]any{"type": "STRING", "description": "The name of the menu item."},
			"description": map[string]any{"type": "STRING", "description": "A brief description of the menu item."},
			"price":       map[string]any{"type": "STRING", "description": "The price of the menu item as a string."},
		},
		"required": []string{"name", "description", "price"},
	},
}
