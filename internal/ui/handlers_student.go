package ui

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/me/campus/internal/api"
	"github.com/me/campus/internal/exam"
	"github.com/me/campus/pkg/model"
)

// renderStudentDashboard shows enrolled courses, upcoming sessions, and
// unread messages at a glance.
func (ui *UI) renderStudentDashboard(w http.ResponseWriter, r *http.Request, sess *model.Session) {
	client := ui.apiFor(sess)

	courses, err := client.ListCourses(r.Context())
	if err != nil {
		ui.renderError(w, "Failed to load courses", err)
		return
	}

	// Secondary panels degrade to empty rather than failing the page.
	schedule, err := client.ListSchedule(r.Context())
	if err != nil {
		ui.logger.Warn("schedule load failed", "error", err)
	}
	messages, err := client.ListMessages(r.Context())
	if err != nil {
		ui.logger.Warn("messages load failed", "error", err)
	}

	unread := 0
	for _, m := range messages {
		if !m.Read {
			unread++
		}
	}

	data := map[string]any{
		"Title":    "Dashboard - Campus",
		"Session":  sess,
		"Courses":  courses,
		"Schedule": schedule,
		"Unread":   unread,
	}
	ui.render(w, "dashboard_student", data)
}

// HandleCourseList renders the student's course catalog.
func (ui *UI) HandleCourseList(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	courses, err := ui.apiFor(sess).ListCourses(r.Context())
	if err != nil {
		ui.renderError(w, "Failed to load courses", err)
		return
	}

	data := map[string]any{
		"Title":   "Courses - Campus",
		"Session": sess,
		"Courses": courses,
	}
	ui.render(w, "courses", data)
}

// HandleCourseDetail renders one course with its reviews and exams.
func (ui *UI) HandleCourseDetail(w http.ResponseWriter, r *http.Request) {
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

	reviews, err := client.ListReviews(r.Context(), courseID)
	if err != nil {
		ui.logger.Warn("reviews load failed", "course", courseID, "error", err)
	}

	data := map[string]any{
		"Title":   course.Title + " - Campus",
		"Session": sess,
		"Course":  course,
		"Reviews": reviews,
	}
	ui.render(w, "course_detail", data)
}

// HandleCourseEnroll enrolls the student and returns to the course.
func (ui *UI) HandleCourseEnroll(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	courseID := chi.URLParam(r, "courseID")

	if err := ui.apiFor(sess).EnrollCourse(r.Context(), courseID); err != nil {
		ui.renderError(w, "Enrollment failed", err)
		return
	}

	ui.logger.Info("student enrolled", "course", courseID, "user", sess.UserID)
	http.Redirect(w, r, "/courses/"+courseID, http.StatusSeeOther)
}

// HandleExamList renders a course's exams with their status and score.
func (ui *UI) HandleExamList(w http.ResponseWriter, r *http.Request) {
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
		"Title":   "Exams - " + course.Title,
		"Session": sess,
		"Course":  course,
		"Exams":   exams,
		"Error":   r.URL.Query().Get("error"),
	}
	ui.render(w, "exams", data)
}

// HandleExamStart begins (or resumes) a timed attempt and shows the
// exam page.
func (ui *UI) HandleExamStart(w http.ResponseWriter, r *http.Request) {
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

	if _, err := ui.attempts.Start(sess.ID, *ex); err != nil {
		if errors.Is(err, exam.ErrExamCompleted) {
			http.Redirect(w, r, "/courses/"+courseID+"/exams?error=Exam+already+completed", http.StatusSeeOther)
			return
		}
		ui.renderError(w, "Failed to start exam", err)
		return
	}

	ui.logger.Info("exam started", "exam", examID, "user", sess.UserID)
	http.Redirect(w, r, "/exam", http.StatusSeeOther)
}

// HandleExamPage renders the live attempt. A reload lands back here
// with the clock still running.
func (ui *UI) HandleExamPage(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	attempt, err := ui.attempts.Get(sess.ID)
	if err != nil {
		http.Redirect(w, r, "/courses", http.StatusSeeOther)
		return
	}

	if attempt.Phase() == exam.PhaseCompleted {
		http.Redirect(w, r, "/exam/result", http.StatusSeeOther)
		return
	}

	ui.render(w, "exam_attempt", ui.examPageData(sess, attempt, ""))
}

// HandleExamAnswer records one answer. HTMX posts here on every radio
// change; the response re-renders just that question card.
func (ui *UI) HandleExamAnswer(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	attempt, err := ui.attempts.Get(sess.ID)
	if err != nil {
		http.Error(w, "no active exam", http.StatusConflict)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	questionID := r.FormValue("question")
	option, err := strconv.Atoi(r.FormValue("option"))
	if err != nil {
		http.Error(w, "invalid option", http.StatusBadRequest)
		return
	}

	if err := attempt.SelectAnswer(questionID, option); err != nil {
		ui.logger.Warn("answer rejected", "question", questionID, "error", err)
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	q, idx := findQuestion(attempt.Exam(), questionID)
	if q == nil {
		http.Error(w, "unknown question", http.StatusBadRequest)
		return
	}
	ui.renderPartial(w, "partial_question", map[string]any{
		"Question": q,
		"Index":    idx,
		"Selected": attempt.Answer(questionID),
	})
}

// HandleExamTimer returns the countdown fragment. HTMX polls this every
// second; the server clock is authoritative, so a missed poll cannot
// buy extra time.
func (ui *UI) HandleExamTimer(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	attempt, err := ui.attempts.Get(sess.ID)
	if err != nil {
		http.Error(w, "no active exam", http.StatusConflict)
		return
	}

	remaining := attempt.Remaining()
	ui.renderPartial(w, "partial_timer", map[string]any{
		"Remaining": exam.FormatRemaining(remaining),
		"Expired":   remaining == 0,
	})
}

// HandleExamSubmitRequest opens the confirmation dialog.
func (ui *UI) HandleExamSubmitRequest(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	attempt, err := ui.attempts.Get(sess.ID)
	if err != nil {
		http.Redirect(w, r, "/courses", http.StatusSeeOther)
		return
	}

	if err := attempt.RequestSubmit(); err != nil && !errors.Is(err, exam.ErrNotInProgress) {
		ui.renderError(w, "Failed to open confirmation", err)
		return
	}
	ui.render(w, "exam_attempt", ui.examPageData(sess, attempt, ""))
}

// HandleExamSubmitCancel closes the dialog and resumes the attempt.
func (ui *UI) HandleExamSubmitCancel(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	attempt, err := ui.attempts.Get(sess.ID)
	if err != nil {
		http.Redirect(w, r, "/courses", http.StatusSeeOther)
		return
	}

	if err := attempt.CancelSubmit(); err != nil {
		ui.logger.Warn("cancel submit rejected", "error", err)
	}
	http.Redirect(w, r, "/exam", http.StatusSeeOther)
}

// HandleExamSubmitConfirm sends the answers for grading. A failed
// submit keeps the attempt and every answer; the page re-renders with
// the error and a retry button instead of dropping the student back to
// the listing.
func (ui *UI) HandleExamSubmitConfirm(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	attempt, err := ui.attempts.Get(sess.ID)
	if err != nil {
		http.Redirect(w, r, "/courses", http.StatusSeeOther)
		return
	}

	client := ui.apiFor(sess)
	_, err = attempt.ConfirmSubmit(r.Context(), client.SubmitExam)
	if err != nil {
		if errors.Is(err, exam.ErrNotConfirming) || errors.Is(err, exam.ErrSubmitInFlight) {
			// Double-clicked confirm; the first post owns the submit.
			http.Redirect(w, r, "/exam", http.StatusSeeOther)
			return
		}
		ui.logger.Warn("exam submit failed", "exam", attempt.Exam().ID, "error", err)
		ui.render(w, "exam_attempt", ui.examPageData(sess, attempt, api.UserMessage(err)))
		return
	}

	ui.logger.Info("exam submitted", "exam", attempt.Exam().ID, "user", sess.UserID,
		"elapsed", time.Since(attempt.StartedAt()).Round(time.Second))
	http.Redirect(w, r, "/exam/result", http.StatusSeeOther)
}

// HandleExamResult shows the graded result and releases the attempt
// when the student leaves for the exam listing.
func (ui *UI) HandleExamResult(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	attempt, err := ui.attempts.Get(sess.ID)
	if err != nil || attempt.Result() == nil {
		http.Redirect(w, r, "/courses", http.StatusSeeOther)
		return
	}

	ex := attempt.Exam()
	data := map[string]any{
		"Title":   "Result - " + ex.Title,
		"Session": sess,
		"Exam":    ex,
		"Result":  attempt.Result(),
	}
	ui.render(w, "exam_result", data)
}

// HandleExamFinish returns to the exam listing after a completed
// attempt.
func (ui *UI) HandleExamFinish(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	courseID := ""
	if attempt, err := ui.attempts.Get(sess.ID); err == nil {
		courseID = attempt.Exam().CourseID
	}
	ui.attempts.Finish(sess.ID)

	if courseID != "" {
		http.Redirect(w, r, "/courses/"+courseID+"/exams", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/courses", http.StatusSeeOther)
}

// HandleSchedule renders the student's upcoming sessions.
func (ui *UI) HandleSchedule(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	items, err := ui.apiFor(sess).ListSchedule(r.Context())
	if err != nil {
		ui.renderError(w, "Failed to load schedule", err)
		return
	}

	data := map[string]any{
		"Title":    "Schedule - Campus",
		"Session":  sess,
		"Schedule": items,
	}
	ui.render(w, "schedule", data)
}

// HandleMessages renders the inbox.
func (ui *UI) HandleMessages(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	messages, err := ui.apiFor(sess).ListMessages(r.Context())
	if err != nil {
		ui.renderError(w, "Failed to load messages", err)
		return
	}

	data := map[string]any{
		"Title":    "Messages - Campus",
		"Session":  sess,
		"Messages": messages,
	}
	ui.render(w, "messages", data)
}

// HandleMessageRead marks a message read and returns to the inbox.
func (ui *UI) HandleMessageRead(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	messageID := chi.URLParam(r, "messageID")

	if err := ui.apiFor(sess).MarkMessageRead(r.Context(), messageID); err != nil {
		ui.logger.Warn("mark read failed", "message", messageID, "error", err)
	}
	http.Redirect(w, r, "/messages", http.StatusSeeOther)
}

// HandleCertificates renders earned certificates.
func (ui *UI) HandleCertificates(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	certs, err := ui.apiFor(sess).ListCertificates(r.Context())
	if err != nil {
		ui.renderError(w, "Failed to load certificates", err)
		return
	}

	data := map[string]any{
		"Title":        "Certificates - Campus",
		"Session":      sess,
		"Certificates": certs,
	}
	ui.render(w, "certificates", data)
}

// examPageData assembles the template data for the live attempt page.
func (ui *UI) examPageData(sess *model.Session, attempt *exam.Attempt, submitErr string) map[string]any {
	ex := attempt.Exam()
	remaining := attempt.Remaining()
	return map[string]any{
		"Title":      ex.Title + " - Campus",
		"Session":    sess,
		"Exam":       ex,
		"Answers":    attempt.Answers(),
		"Answered":   attempt.AnsweredCount(),
		"Remaining":  exam.FormatRemaining(remaining),
		"Expired":    remaining == 0,
		"Confirming": attempt.Phase() == exam.PhaseConfirming,
		"SubmitErr":  submitErr,
	}
}

// findQuestion returns the question and its position in the exam.
func findQuestion(ex model.Exam, questionID string) (*model.Question, int) {
	for i := range ex.Questions {
		if ex.Questions[i].ID == questionID {
			return &ex.Questions[i], i
		}
	}
	return nil, -1
}
