package models

// Ingredient is a single ingredient line in a recipe document. Amount and
// unit are free-form and may be empty ("salt to taste").
type Ingredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount,omitempty"`
	Unit   string `json:"unit,omitempty"`
}

// InstructionSection groups ordered preparation steps under a heading.
type InstructionSection struct {
	Name  string   `json:"name"`
	Steps []string `json:"steps"`
}

// RecipeData is the raw on-disk recipe document, one JSON file per recipe.
// Pointer fields distinguish absent from zero; normalization into a Recipe
// substitutes per-field defaults and never fails on missing values.
type RecipeData struct {
	Title            string               `json:"title"`
	Description      string               `json:"description"`
	PrepTimeMinutes  *int                 `json:"prep_time"`
	CookTimeMinutes  *int                 `json:"cook_time"`
	TotalTimeMinutes *int                 `json:"total_time"`
	Servings         *int                 `json:"servings"`
	Ingredients      []Ingredient         `json:"ingredients"`
	Instructions     []InstructionSection `json:"instructions"`
	Tags             []string             `json:"tags"`
	Difficulty       *string              `json:"difficulty"`
	Cuisine          *string              `json:"cuisine"`
	SourceURL        *string              `json:"source_url"`
	VideoURL         string               `json:"video_url,omitempty"`
	CreatedAt        string               `json:"created_at,omitempty"`
}
