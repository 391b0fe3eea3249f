package model

const (
	EntityName = "account"
)

// TableTypeOption is one entry of the backend's table type catalogue.
type TableTypeOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
