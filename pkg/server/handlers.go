package server

import (
	"moodmap/handler"
)

type Handlers struct {
	Map *handler.Map
}
