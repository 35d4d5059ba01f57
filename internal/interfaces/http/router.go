package http

import (
	"github.com/gofiber/fiber/v2"

	authapp "github.com/jhoicas/Documentos-api/internal/application/auth"
	"github.com/jhoicas/Documentos-api/internal/application/builder"
	"github.com/jhoicas/Documentos-api/internal/application/documents"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	BuilderUC   *builder.UseCase
	DocumentsUC *documents.UseCase
	AuthUC      *authapp.UseCase
	Session     SessionConfig
}

// Router registra las rutas de la API. Todo /api pasa por el middleware de
// sesión: cada navegador/cliente obtiene su propia sesión del constructor.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", SessionMiddleware(deps.Session, deps.BuilderUC))

	// Constructor: tipo activo, formulario e ítems
	builderGroup := api.Group("/builder")
	builderHandler := NewBuilderHandler(deps.BuilderUC)
	builderGroup.Get("/state", builderHandler.State)
	builderGroup.Put("/type", builderHandler.SelectType)
	builderGroup.Put("/fields", builderHandler.SetField)
	builderGroup.Post("/items", builderHandler.AddItem)
	builderGroup.Patch("/items/:id", builderHandler.UpdateItem)
	builderGroup.Delete("/items/:id", builderHandler.RemoveItem)

	// Documentos: preview y generación contra el backend de render
	docs := api.Group("/documents")
	documentHandler := NewDocumentHandler(deps.DocumentsUC)
	docs.Post("/preview", documentHandler.Preview)
	docs.Post("/generate", documentHandler.Generate)

	// Auth: delegada por completo al backend de autenticación
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Get("/check-auth", authHandler.CheckAuth)
	authGroup.Post("/telegram/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
}
