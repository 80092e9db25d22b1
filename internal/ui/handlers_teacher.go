package ui

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/me/campus/internal/api"
	"github.com/me/campus/pkg/model"
)

// renderTeacherDashboard shows pending reviews, roster size, and recent
// payments. Assistants see the same dashboard as teachers.
func (ui *UI) renderTeacherDashboard(w http.ResponseWriter, r *http.Request, sess *model.Session) {
	client := ui.apiFor(sess)

	courses, err := client.ListCourses(r.Context())
	if err != nil {
		ui.renderError(w, "Failed to load courses", err)
		return
	}

	pending := 0
	for _, c := range courses {
		if c.Status == model.CoursePending {
			pending++
		}
	}

	students, err := client.ListStudents(r.Context())
	if err != nil {
		ui.logger.Warn("roster load failed", "error", err)
	}
	payments, err := client.ListPayments(r.Context())
	if err != nil {
		ui.logger.Warn("payments load failed", "error", err)
	}
	if len(payments) > 5 {
		payments = payments[:5]
	}

	data := map[string]any{
		"Title":    "Teaching - Campus",
		"Session":  sess,
		"Courses":  courses,
		"Pending":  pending,
		"Students": len(students),
		"Payments": payments,
	}
	ui.render(w, "dashboard_teacher", data)
}

// HandleReviewList renders courses awaiting approval.
func (ui *UI) HandleReviewList(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	courses, err := ui.apiFor(sess).ListCourses(r.Context())
	if err != nil {
		ui.renderError(w, "Failed to load courses", err)
		return
	}

	var pending []model.Course
	for _, c := range courses {
		if c.Status == model.CoursePending {
			pending = append(pending, c)
		}
	}

	data := map[string]any{
		"Title":   "Course Review - Campus",
		"Session": sess,
		"Courses": pending,
		"Error":   r.URL.Query().Get("error"),
	}
	ui.render(w, "review", data)
}

// HandleCourseApprove approves a pending course.
func (ui *UI) HandleCourseApprove(w http.ResponseWriter, r *http.Request) {
	ui.reviewAction(w, r, "approve")
}

// HandleCourseReject rejects a pending course.
func (ui *UI) HandleCourseReject(w http.ResponseWriter, r *http.Request) {
	ui.reviewAction(w, r, "reject")
}

func (ui *UI) reviewAction(w http.ResponseWriter, r *http.Request, action string) {
	sess := SessionFromContext(r.Context())
	courseID := chi.URLParam(r, "courseID")
	client := ui.apiFor(sess)

	var err error
	if action == "approve" {
		err = client.ApproveCourse(r.Context(), courseID)
	} else {
		err = client.RejectCourse(r.Context(), courseID)
	}
	if err != nil {
		ui.logger.Warn("review action failed", "action", action, "course", courseID, "error", err)
		http.Redirect(w, r, "/teach/review?error="+url.QueryEscape(api.UserMessage(err)), http.StatusSeeOther)
		return
	}

	ui.logger.Info("course reviewed", "action", action, "course", courseID, "by", sess.UserID)
	http.Redirect(w, r, "/teach/review", http.StatusSeeOther)
}

// HandleCourseEdit renders the course editing form.
func (ui *UI) HandleCourseEdit(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	courseID := chi.URLParam(r, "courseID")

	course, err := ui.apiFor(sess).GetCourse(r.Context(), courseID)
	if err != nil {
		if api.IsNotFoundError(err) {
			ui.renderNotFound(w, "Course not found")
			return
		}
		ui.renderError(w, "Failed to load course", err)
		return
	}

	data := map[string]any{
		"Title":   "Edit Course - Campus",
		"Session": sess,
		"Course":  course,
	}
	ui.render(w, "course_form", data)
}

// HandleCourseUpdate saves edited course fields.
func (ui *UI) HandleCourseUpdate(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	courseID := chi.URLParam(r, "courseID")

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue("price")), 64)
	if err != nil || price < 0 {
		price = 0
	}

	course := model.Course{
		ID:          courseID,
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Price:       price,
		Duration:    strings.TrimSpace(r.FormValue("duration")),
		Level:       strings.TrimSpace(r.FormValue("level")),
		Category:    strings.TrimSpace(r.FormValue("category")),
		ImageURL:    strings.TrimSpace(r.FormValue("image_url")),
	}
	if course.Title == "" {
		data := map[string]any{
			"Title":    "Edit Course - Campus",
			"Session":  sess,
			"Course":   &course,
			"Problems": []string{"Title is required"},
		}
		ui.renderStatus(w, http.StatusUnprocessableEntity, "course_form", data)
		return
	}

	if err := ui.apiFor(sess).UpdateCourse(r.Context(), course); err != nil {
		ui.renderError(w, "Failed to update course", err)
		return
	}

	ui.logger.Info("course updated", "course", courseID, "by", sess.UserID)
	http.Redirect(w, r, "/teach", http.StatusSeeOther)
}

// HandleCourseDelete removes a course.
func (ui *UI) HandleCourseDelete(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	courseID := chi.URLParam(r, "courseID")

	if err := ui.apiFor(sess).DeleteCourse(r.Context(), courseID); err != nil {
		ui.renderError(w, "Failed to delete course", err)
		return
	}

	ui.logger.Info("course deleted", "course", courseID, "by", sess.UserID)
	http.Redirect(w, r, "/teach", http.StatusSeeOther)
}

// HandleStudentList renders the roster.
func (ui *UI) HandleStudentList(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	students, err := ui.apiFor(sess).ListStudents(r.Context())
	if err != nil {
		ui.renderError(w, "Failed to load students", err)
		return
	}

	data := map[string]any{
		"Title":    "Students - Campus",
		"Session":  sess,
		"Students": students,
	}
	ui.render(w, "students", data)
}

// HandleStudentDetail renders one roster entry.
func (ui *UI) HandleStudentDetail(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	studentID := chi.URLParam(r, "studentID")

	student, err := ui.apiFor(sess).GetStudent(r.Context(), studentID)
	if err != nil {
		if api.IsNotFoundError(err) {
			ui.renderNotFound(w, "Student not found")
			return
		}
		ui.renderError(w, "Failed to load student", err)
		return
	}

	data := map[string]any{
		"Title":   student.Name + " - Campus",
		"Session": sess,
		"Student": student,
	}
	ui.render(w, "student_detail", data)
}

// HandlePaymentList renders payment history for the teacher's courses.
func (ui *UI) HandlePaymentList(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	payments, err := ui.apiFor(sess).ListPayments(r.Context())
	if err != nil {
		ui.renderError(w, "Failed to load payments", err)
		return
	}

	data := map[string]any{
		"Title":    "Payments - Campus",
		"Session":  sess,
		"Payments": payments,
	}
	ui.render(w, "payments", data)
}

// HandleTeachExamList renders a course's exams with authoring actions.
func (ui *UI) HandleTeachExamList(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	courseID := chi.URLParam(r, "courseID")
	client := ui.apiFor(sess)

	course, err := client.GetCourse(r.Context(), courseID)
	if err != nil {
		if api.IsNotFoundError(err) {
			ui.renderNotFound(w, "Course not found")
			return
		}
		ui.renderError(w, "Failed to load course", err)
		return
	}

	exams, err := client.ListExams(r.Context(), courseID)
	if err != nil {
		ui.renderError(w, "Failed to load exams", err)
		return
	}

	data := map[string]any{
		"Title":   course.Title + " Exams - Campus",
		"Session": sess,
		"Course":  course,
		"Exams":   exams,
	}
	ui.render(w, "teach_exams", data)
}

// HandleExamNew renders the blank authoring form.
func (ui *UI) HandleExamNew(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	courseID := chi.URLParam(r, "courseID")

	data := map[string]any{
		"Title":    "New Exam - Campus",
		"Session":  sess,
		"CourseID": courseID,
		"Draft":    emptyDraft(),
	}
	ui.render(w, "exam_form", data)
}

// HandleExamEdit renders the authoring form pre-filled from an
// existing exam.
func (ui *UI) HandleExamEdit(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	courseID := chi.URLParam(r, "courseID")
	examID := chi.URLParam(r, "examID")

	ex, err := ui.apiFor(sess).GetExam(r.Context(), courseID, examID)
	if err != nil {
		if api.IsNotFoundError(err) {
			ui.renderNotFound(w, "Exam not found")
			return
		}
		ui.renderError(w, "Failed to load exam", err)
		return
	}

	data := map[string]any{
		"Title":    "Edit Exam - Campus",
		"Session":  sess,
		"CourseID": courseID,
		"ExamID":   examID,
		"Draft":    draftFromExam(ex),
	}
	ui.render(w, "exam_form", data)
}

// HandleExamCreate validates the authoring form and creates the exam.
func (ui *UI) HandleExamCreate(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	courseID := chi.URLParam(r, "courseID")

	draft, problems := ui.parseExamForm(r)
	if len(problems) > 0 {
		ui.renderExamFormErrors(w, sess, courseID, "", draft, problems)
		return
	}

	if _, err := ui.apiFor(sess).CreateExam(r.Context(), courseID, draft); err != nil {
		ui.renderExamFormErrors(w, sess, courseID, "", draft, []string{api.UserMessage(err)})
		return
	}

	ui.logger.Info("exam created", "course", courseID, "by", sess.UserID)
	http.Redirect(w, r, "/teach/courses/"+courseID+"/exams", http.StatusSeeOther)
}

// HandleExamUpdate validates the authoring form and replaces the exam.
func (ui *UI) HandleExamUpdate(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	courseID := chi.URLParam(r, "courseID")
	examID := chi.URLParam(r, "examID")

	draft, problems := ui.parseExamForm(r)
	if len(problems) > 0 {
		ui.renderExamFormErrors(w, sess, courseID, examID, draft, problems)
		return
	}

	if err := ui.apiFor(sess).UpdateExam(r.Context(), courseID, examID, draft); err != nil {
		ui.renderExamFormErrors(w, sess, courseID, examID, draft, []string{api.UserMessage(err)})
		return
	}

	ui.logger.Info("exam updated", "exam", examID, "by", sess.UserID)
	http.Redirect(w, r, "/teach/courses/"+courseID+"/exams", http.StatusSeeOther)
}

// HandleExamDelete removes an exam.
func (ui *UI) HandleExamDelete(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	courseID := chi.URLParam(r, "courseID")
	examID := chi.URLParam(r, "examID")

	if err := ui.apiFor(sess).DeleteExam(r.Context(), courseID, examID); err != nil {
		ui.renderError(w, "Failed to delete exam", err)
		return
	}

	ui.logger.Info("exam deleted", "exam", examID, "by", sess.UserID)
	http.Redirect(w, r, "/teach/courses/"+courseID+"/exams", http.StatusSeeOther)
}

// parseExamForm decodes and validates the authoring form. The form
// carries a fixed grid of question fields: question_N, option_N_M,
// correct_N, points_N.
func (ui *UI) parseExamForm(r *http.Request) (model.ExamDraft, []string) {
	if err := r.ParseForm(); err != nil {
		return model.ExamDraft{}, []string{"Invalid form submission"}
	}

	draft := model.ExamDraft{
		Title:        strings.TrimSpace(r.FormValue("title")),
		Description:  strings.TrimSpace(r.FormValue("description")),
		Duration:     atoiDefault(r.FormValue("duration"), 0),
		TotalPoints:  atoiDefault(r.FormValue("total_points"), 0),
		PassingScore: atoiDefault(r.FormValue("passing_score"), 0),
		StartDate:    strings.TrimSpace(r.FormValue("start_date")),
		EndDate:      strings.TrimSpace(r.FormValue("end_date")),
	}

	for i := 0; ; i++ {
		text := strings.TrimSpace(r.FormValue("question_" + strconv.Itoa(i)))
		if text == "" {
			break
		}
		q := model.QuestionDraft{
			Text:          text,
			CorrectAnswer: atoiDefault(r.FormValue("correct_"+strconv.Itoa(i)), -1),
			Points:        atoiDefault(r.FormValue("points_"+strconv.Itoa(i)), 0),
		}
		for j := 0; j < 4; j++ {
			q.Options = append(q.Options, strings.TrimSpace(r.FormValue("option_"+strconv.Itoa(i)+"_"+strconv.Itoa(j))))
		}
		draft.Questions = append(draft.Questions, q)
	}

	if err := ui.validate.Struct(draft); err != nil {
		return draft, describeValidation(err)
	}
	return draft, nil
}

// describeValidation turns validator errors into form-level messages.
func describeValidation(err error) []string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return []string{"Exam form is incomplete"}
	}

	var out []string
	for _, fe := range errs {
		switch fe.Tag() {
		case "required":
			out = append(out, fe.Field()+" is required")
		case "min":
			out = append(out, "At least one question is required")
		case "len":
			out = append(out, "Every question needs four options")
		case "gte", "lt":
			out = append(out, "Correct answer must point at one of the four options")
		case "gt":
			out = append(out, fe.Field()+" must be greater than zero")
		default:
			out = append(out, fe.Field()+" is invalid")
		}
	}
	return out
}

func (ui *UI) renderExamFormErrors(w http.ResponseWriter, sess *model.Session, courseID, examID string, draft model.ExamDraft, problems []string) {
	data := map[string]any{
		"Title":    "Exam - Campus",
		"Session":  sess,
		"CourseID": courseID,
		"ExamID":   examID,
		"Draft":    draft,
		"Problems": problems,
	}
	ui.renderStatus(w, http.StatusUnprocessableEntity, "exam_form", data)
}

func emptyDraft() model.ExamDraft {
	return model.ExamDraft{
		Duration:    30,
		TotalPoints: 100,
		Questions: []model.QuestionDraft{
			{Options: make([]string, 4)},
		},
	}
}

func draftFromExam(ex *model.Exam) model.ExamDraft {
	draft := model.ExamDraft{
		Title:        ex.Title,
		Description:  ex.Description,
		Duration:     ex.Duration,
		TotalPoints:  ex.TotalPoints,
		PassingScore: ex.PassingScore,
		StartDate:    ex.StartDate.Format("2006-01-02"),
		EndDate:      ex.EndDate.Format("2006-01-02"),
	}
	for _, q := range ex.Questions {
		// The form renders a fixed grid of four option inputs.
		opts := append([]string(nil), q.Options...)
		for len(opts) < 4 {
			opts = append(opts, "")
		}
		draft.Questions = append(draft.Questions, model.QuestionDraft{
			ID:            q.ID,
			Text:          q.Text,
			Options:       opts[:4],
			CorrectAnswer: q.CorrectAnswer,
			Points:        q.Points,
		})
	}
	return draft
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}
