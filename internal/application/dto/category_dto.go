package dto

// CategoryRequest criação/atualização de categoria.
type CategoryRequest struct {
	Name          string   `json:"name"`
	Subcategories []string `json:"subcategories"`
}

// CategoryResponse categoria para exibição.
type CategoryResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Subcategories []string `json:"subcategories"`
}
