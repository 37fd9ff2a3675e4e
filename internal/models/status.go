package models

// Catálogo de status, somente leitura. Cor é dica de exibição, repassada
// como veio do banco.
type Status struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:50;not null" json:"name"`
	Color string `gorm:"size:7" json:"color"`
}
