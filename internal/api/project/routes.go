package project

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers project routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/options", h.GetOptions)

	r.Route("/projects", func(r chi.Router) {
		r.Post("/", h.CreateProject)
		r.Get("/", h.ListProjects)

		r.Route("/{project_id}", func(r chi.Router) {
			r.Get("/", h.GetProject)
			r.Delete("/", h.DeleteProject)

			r.Patch("/schema", h.UpdateSchema)
			r.Post("/preset/{name}", h.ApplyPreset)
			r.Post("/reset", h.ResetProject)
			r.Post("/radius", h.SetCornerRadius)
			r.Post("/generate", h.Generate)

			r.Get("/prompt", h.GetPrompt)
			r.Get("/suggestions", h.GetSuggestions)
			r.Get("/preview", h.GetPreview)
			r.Get("/tokens", h.GetTokens)

			r.Post("/import", h.Import)
			r.Get("/export", h.Export)
		})
	})
}
