package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"roadquote/collections"
	"roadquote/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// ── Public routes (share link and PIN unlock) ────────────
		se.Router.POST("/api/quote/auth/verify", handlers.HandlePINVerify(app))
		se.Router.GET("/api/quote/share/{id}", handlers.HandleQuotationShare(app))
		se.Router.POST("/api/quote/share/{id}/signature", handlers.HandleSignatureUpload(app))

		// ── PIN-gated routes ─────────────────────────────────────
		se.Router.POST("/api/quote/auth/pin", handlers.RequirePIN(app, handlers.HandlePINChange(app)))

		// Quotations (next-number must be before {id} to avoid matching it as an ID)
		se.Router.GET("/api/quote/quotations/next-number", handlers.RequirePIN(app, handlers.HandleNextQuoteNumber(app)))
		se.Router.GET("/api/quote/quotations", handlers.RequirePIN(app, handlers.HandleQuotationList(app)))
		se.Router.POST("/api/quote/quotations", handlers.RequirePIN(app, handlers.HandleQuotationSave(app)))
		se.Router.GET("/api/quote/quotations/{id}", handlers.RequirePIN(app, handlers.HandleQuotationView(app)))
		se.Router.POST("/api/quote/quotations/{id}", handlers.RequirePIN(app, handlers.HandleQuotationSave(app)))
		se.Router.DELETE("/api/quote/quotations/{id}", handlers.RequirePIN(app, handlers.HandleQuotationDelete(app)))
		se.Router.GET("/api/quote/quotations/{id}/export/pdf", handlers.RequirePIN(app, handlers.HandleQuotationExportPDF(app)))
		se.Router.GET("/api/quote/quotations/{id}/export/excel", handlers.RequirePIN(app, handlers.HandleQuotationExportExcel(app)))
		se.Router.DELETE("/api/quote/quotations/{id}/signature", handlers.RequirePIN(app, handlers.HandleSignatureClear(app)))

		// Vendors
		se.Router.GET("/api/quote/vendors", handlers.RequirePIN(app, handlers.HandleVendorList(app)))
		se.Router.POST("/api/quote/vendors", handlers.RequirePIN(app, handlers.HandleVendorSave(app)))
		se.Router.POST("/api/quote/vendors/{id}", handlers.RequirePIN(app, handlers.HandleVendorSave(app)))
		se.Router.DELETE("/api/quote/vendors/{id}", handlers.RequirePIN(app, handlers.HandleVendorDelete(app)))

		// Item dictionary
		se.Router.GET("/api/quote/items", handlers.RequirePIN(app, handlers.HandleItemList(app)))
		se.Router.DELETE("/api/quote/items/{id}", handlers.RequirePIN(app, handlers.HandleItemDelete(app)))

		// Memo presets
		se.Router.GET("/api/quote/memo-presets", handlers.RequirePIN(app, handlers.HandleMemoPresetList(app)))
		se.Router.DELETE("/api/quote/memo-presets", handlers.RequirePIN(app, handlers.HandleMemoPresetDelete(app)))

		// Serve the single-page client from ./static
		se.Router.GET("/{path...}", apis.Static(os.DirFS("./static"), true))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
