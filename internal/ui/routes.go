package ui

import (
	"github.com/go-chi/chi/v5"

	"github.com/me/campus/pkg/model"
)

// RegisterRoutes registers all UI routes on the given router.
func (ui *UI) RegisterRoutes(r chi.Router) {
	// Public routes. The landing and pricing pages render for anyone
	// but pick up the session when there is one.
	r.Group(func(r chi.Router) {
		r.Use(ui.OptionalAuthMiddleware)
		r.Get("/", ui.HandleLanding)
		r.Get("/pricing", ui.HandlePricing)
	})

	r.Get("/auth", ui.HandleAuth)
	r.Post("/auth/login", ui.HandleLoginPost)
	r.Post("/auth/register", ui.HandleRegisterPost)

	// Protected routes (auth required).
	r.Group(func(r chi.Router) {
		r.Use(ui.AuthMiddleware)

		r.Get("/dashboard", ui.HandleDashboard)
		r.Get("/logout", ui.HandleLogout)

		// Student pages.
		r.Group(func(r chi.Router) {
			r.Use(ui.RequireRoles(model.RoleStudent))

			r.Route("/courses", func(r chi.Router) {
				r.Get("/", ui.HandleCourseList)
				r.Route("/{courseID}", func(r chi.Router) {
					r.Get("/", ui.HandleCourseDetail)
					r.Post("/enroll", ui.HandleCourseEnroll)
					r.Get("/exams", ui.HandleExamList)
					r.Post("/exams/{examID}/start", ui.HandleExamStart)
				})
			})

			// Live attempt. The attempt is keyed by session, so these
			// paths carry no IDs.
			r.Route("/exam", func(r chi.Router) {
				r.Get("/", ui.HandleExamPage)
				r.Post("/answer", ui.HandleExamAnswer)
				r.Get("/timer", ui.HandleExamTimer)
				r.Post("/submit", ui.HandleExamSubmitRequest)
				r.Post("/submit/cancel", ui.HandleExamSubmitCancel)
				r.Post("/submit/confirm", ui.HandleExamSubmitConfirm)
				r.Get("/result", ui.HandleExamResult)
				r.Post("/finish", ui.HandleExamFinish)
			})

			r.Post("/pricing/subscribe", ui.HandleSubscribe)
			r.Post("/pricing/discount", ui.HandleDiscountCheck)
			r.Get("/schedule", ui.HandleSchedule)
			r.Get("/messages", ui.HandleMessages)
			r.Post("/messages/{messageID}/read", ui.HandleMessageRead)
			r.Get("/certificates", ui.HandleCertificates)
		})

		// Teaching pages. Assistants pass the Teacher restriction
		// through their effective role.
		r.Route("/teach", func(r chi.Router) {
			r.Use(ui.RequireRoles(model.RoleTeacher))

			r.Get("/", ui.HandleDashboard)
			r.Get("/review", ui.HandleReviewList)
			r.Get("/students", ui.HandleStudentList)
			r.Get("/students/{studentID}", ui.HandleStudentDetail)
			r.Get("/payments", ui.HandlePaymentList)

			r.Route("/courses/{courseID}", func(r chi.Router) {
				r.Get("/edit", ui.HandleCourseEdit)
				r.Post("/", ui.HandleCourseUpdate)
				r.Post("/approve", ui.HandleCourseApprove)
				r.Post("/reject", ui.HandleCourseReject)
				r.Post("/delete", ui.HandleCourseDelete)

				r.Route("/exams", func(r chi.Router) {
					r.Get("/", ui.HandleTeachExamList)
					r.Get("/new", ui.HandleExamNew)
					r.Post("/", ui.HandleExamCreate)
					r.Get("/{examID}/edit", ui.HandleExamEdit)
					r.Post("/{examID}", ui.HandleExamUpdate)
					r.Post("/{examID}/delete", ui.HandleExamDelete)
				})
			})
		})
	})
}
