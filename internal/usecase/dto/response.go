package dto

import "github.com/destination-service/internal/domain"

// MessageResponse - подтверждение операции без тела
type MessageResponse struct {
	Message string `json:"message"`
}

// ListItemResponse - один элемент спискового поля дестинации
type ListItemResponse struct {
	Item domain.Place `json:"item"`
}
