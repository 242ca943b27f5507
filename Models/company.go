package Models

import "gorm.io/gorm"

type Company struct {
	gorm.Model
	DocID   string `json:"doc_id" gorm:"index"`
	Name    string `json:"name"`
	CNPJ    string `json:"cnpj"`
	Address string `json:"address"`
	Contact string `json:"contact"`
	Notes   string `json:"notes"`
}

type Driver struct {
	gorm.Model
	DocID  string `json:"doc_id" gorm:"index"`
	Name   string `json:"name"`
	CPF    string `json:"cpf"`
	CNH    string `json:"cnh"`
	Phone  string `json:"phone"`
	Status string `json:"status" gorm:"default:active"`
}

type Vehicle struct {
	gorm.Model
	DocID    string `json:"doc_id" gorm:"index"`
	CarModel string `json:"model" gorm:"column:model"`
	Plate    string `json:"plate"`
	Year     string `json:"year"`
	Color    string `json:"color"`
	Notes    string `json:"notes"`
	PhotoURL string `json:"photo_url"`
}
