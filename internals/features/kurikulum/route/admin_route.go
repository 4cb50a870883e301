// file: internals/features/kurikulum/route/admin_route.go
package route

import (
	"kurikulum_backend/internals/features/kurikulum/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type adminHandlers interface {
	List(c *fiber.Ctx) error
	Detail(c *fiber.Ctx) error
	Create(c *fiber.Ctx) error
	Update(c *fiber.Ctx) error
	Remove(c *fiber.Ctx) error
	Export(c *fiber.Ctx) error
	Import(c *fiber.Ctx) error
}

/*
Admin CRUD, contoh mount: KurikulumAdminRoutes(app.Group("/api/admin"), db)
- /api/admin/kurikulums ...
- /api/admin/materi-items?qc_approve=true ...
*/
func KurikulumAdminRoutes(r fiber.Router, db *gorm.DB) {
	mount(r, "/kurikulums", controller.NewKurikulumAdmin(db))
	mount(r, "/fases", controller.NewFaseAdmin(db))
	mount(r, "/kelas", controller.NewKelasAdmin(db))
	mount(r, "/elements", controller.NewElementAdmin(db))
	mount(r, "/tujuan-pembelajarans", controller.NewTujuanAdmin(db))
	mount(r, "/materis", controller.NewMateriAdmin(db))
	mount(r, "/materi-items", controller.NewMateriItemAdmin(db))
	mount(r, "/materi-item-videos", controller.NewMateriItemVideoAdmin(db))
}

func mount(r fiber.Router, path string, h adminHandlers) {
	g := r.Group(path)
	// export/import sebelum /:id
	g.Get("/export", h.Export)
	g.Post("/import", h.Import)

	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Get("/:id", h.Detail)
	g.Put("/:id", h.Update)
	g.Patch("/:id", h.Update)
	g.Delete("/:id", h.Remove)
}
