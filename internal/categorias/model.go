package categorias

// Categoria is a flat product category. Names are unique server-side;
// duplicates come back as a field error on "nome".
type Categoria struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

// CreateRequest is the name-only creation payload.
type CreateRequest struct {
	Nome string `json:"nome"`
}
