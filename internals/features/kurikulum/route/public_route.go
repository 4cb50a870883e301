// file: internals/features/kurikulum/route/public_route.go
package route

import (
	"kurikulum_backend/internals/features/kurikulum/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Endpoint publik (read-only), dipakai frontend katalog:
- GET /materi-items?materi_id=
- GET /non-paginated/choices/{kurikulum,kelas,fase}
- GET /curriculum-overview
- GET /filter-options
*/
func KurikulumPublicRoutes(r fiber.Router, db *gorm.DB, pageSize, maxPageSize int) {
	ctl := controller.NewCatalogController(db, pageSize, maxPageSize)

	r.Get("/materi-items", ctl.MateriItems)
	r.Get("/curriculum-overview", ctl.CurriculumOverview)
	r.Get("/filter-options", ctl.FilterOptions)

	choices := r.Group("/non-paginated/choices")
	choices.Get("/kurikulum", ctl.KurikulumChoices)
	choices.Get("/kelas", ctl.KelasChoices)
	choices.Get("/fase", ctl.FaseChoices)
}
