package repository

import "errors"

var (
	// ErrNotFound возвращается операциями get/update по несуществующему ID.
	// Хендлеры транслируют его в клиентский ответ 404.
	ErrNotFound = errors.New("entity not found")

	// ErrDataIntegrity возвращается, когда заданная ссылка отправителя
	// сообщения не разрешается в пользователя. Для такого чтения это
	// фатальное нарушение целостности данных, а не восстановимая ситуация.
	ErrDataIntegrity = errors.New("data integrity violation")
)
