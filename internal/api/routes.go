package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Get("/setup-status", handler.SetupStatus)
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/recover", handler.Recover)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	profile := api.Group("/profile", handler.AuthRequired)
	profile.Get("", handler.GetProfile)
	profile.Post("/questionnaire", handler.SubmitQuestionnaire)
	profile.Post("/scan", handler.AnalyzeScan)

	logs := api.Group("/logs", handler.AuthRequired)
	logs.Get("", handler.GetLogs)
	logs.Post("", handler.CreateLog)

	api.Get("/trend", handler.AuthRequired, handler.GetTrend)

	mindset := api.Group("/mindset", handler.AuthRequired)
	mindset.Get("", handler.GetMindsetState)
	mindset.Get("/quiz", handler.GetMindsetQuiz)
	mindset.Post("/quiz", handler.SubmitMindsetQuiz)
	mindset.Get("/modules", handler.GetMindsetModules)
	mindset.Post("/complete-day", handler.CompleteMindsetDay)
	mindset.Post("/module", handler.SelectMindsetModule)

	blend := api.Group("/blend", handler.AuthRequired)
	blend.Get("", handler.GetBlend)
	blend.Post("/order", handler.OrderBlend)
	blend.Post("/status", handler.UpdateBlendStatus)

	coach := api.Group("/coach", handler.AuthRequired)
	coach.Post("/message", handler.CoachMessage)
	coach.Post("/speech", handler.CoachSpeech)

	account := api.Group("/account", handler.AuthRequired)
	account.Post("/change-password", handler.ChangePassword)
	account.Post("/regenerate-recovery-code", handler.RegenerateRecoveryCode)
	account.Post("/display-name", handler.UpdateDisplayName)
	account.Post("/clear-data", handler.ClearCheckinData)
	account.Delete("", handler.DeleteAccount)
}
