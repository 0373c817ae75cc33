// Package docs Destination Service API.
//
// CRUD-бэкенд для travel-planning клиента. Дестинации собираются из четырёх
// внешних сервисов (геокодирование, погода, точки интереса, рестораны) при
// создании и сохраняются в PostgreSQL. Отдельный ресурс custom-locations
// хранит пользовательские метки на карте.
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package swagger
