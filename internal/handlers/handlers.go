package handlers

import (
	"github.com/baajeelectronics/baaje-golang/internal/auth"
	"github.com/baajeelectronics/baaje-golang/internal/store"
)

// Handlers carries the shared dependencies for every route handler.
// Everything is injected from main; handlers never touch globals.
type Handlers struct {
	Store  *store.Store
	Tokens *auth.TokenService
}
