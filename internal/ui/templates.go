package ui

import (
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"
)

// Template functions available in all templates.
var templateFuncs = template.FuncMap{
	"formatTime": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Format("2006-01-02 15:04")
	},
	"formatDate": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Format("2006-01-02")
	},
	"money": func(v float64) string {
		return fmt.Sprintf("$%.2f", v)
	},
	"answerFor": func(answers map[string]int, questionID string) int {
		// Distinguishes "unanswered" from "option 0 chosen".
		if v, ok := answers[questionID]; ok {
			return v
		}
		return -1
	},
	"examStatusColor": func(status string) string {
		switch status {
		case "completed":
			return "bg-green-100 text-green-800"
		case "in_progress":
			return "bg-blue-100 text-blue-800"
		default:
			return "bg-gray-100 text-gray-600"
		}
	},
	"examStatusLabel": func(status string) string {
		switch status {
		case "completed":
			return "Completed"
		case "in_progress":
			return "In progress"
		default:
			return "Not started"
		}
	},
	"courseStatusColor": func(status string) string {
		switch status {
		case "approved":
			return "bg-green-100 text-green-800"
		case "rejected":
			return "bg-red-100 text-red-800"
		case "pending":
			return "bg-yellow-100 text-yellow-800"
		default:
			return "bg-gray-100 text-gray-600"
		}
	},
	"paymentStatusColor": func(status string) string {
		switch status {
		case "completed":
			return "bg-green-100 text-green-800"
		case "failed", "refunded":
			return "bg-red-100 text-red-800"
		default:
			return "bg-yellow-100 text-yellow-800"
		}
	},
	"deref": func(p *int) int {
		if p == nil {
			return 0
		}
		return *p
	},
	"add": func(a, b int) int {
		return a + b
	},
	"sub": func(a, b int) int {
		return a - b
	},
	"percent": func(a, b int) int {
		if b == 0 {
			return 0
		}
		return (a * 100) / b
	},
	"seq": func(n int) []int {
		result := make([]int, n)
		for i := range result {
			result[i] = i
		}
		return result
	},
	"truncate": func(s string, n int) string {
		if len(s) <= n {
			return s
		}
		return s[:n] + "..."
	},
	"stars": func(rating float64) string {
		full := int(rating + 0.5)
		if full > 5 {
			full = 5
		}
		return strings.Repeat("★", full) + strings.Repeat("☆", 5-full)
	},
	"starsInt": func(rating int) string {
		if rating > 5 {
			rating = 5
		}
		if rating < 0 {
			rating = 0
		}
		return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
	},
	"dict": func(pairs ...any) map[string]any {
		m := make(map[string]any, len(pairs)/2)
		for i := 0; i+1 < len(pairs); i += 2 {
			key, ok := pairs[i].(string)
			if !ok {
				continue
			}
			m[key] = pairs[i+1]
		}
		return m
	},
	"urlquery": func(s string) string {
		return template.URLQueryEscaper(s)
	},
}

// renderTemplate renders a page template inside the layout.
func renderTemplate(w io.Writer, name string, data map[string]any) error {
	content, ok := templates[name]
	if !ok {
		return fmt.Errorf("template not found: %s", name)
	}

	layout, ok := templates["layout"]
	if !ok {
		return fmt.Errorf("layout template not found")
	}

	tmpl, err := template.New("layout").Funcs(templateFuncs).Parse(layout)
	if err != nil {
		return fmt.Errorf("parse layout: %w", err)
	}

	if _, err = tmpl.New("content").Parse(content); err != nil {
		return fmt.Errorf("parse content: %w", err)
	}

	// Partials are reachable from full pages too (first render of a
	// fragment that HTMX later swaps).
	for partName, partContent := range templates {
		if strings.HasPrefix(partName, "partial_") {
			if _, err = tmpl.New(partName).Parse(partContent); err != nil {
				return fmt.Errorf("parse partial %s: %w", partName, err)
			}
		}
	}

	return tmpl.Execute(w, data)
}

// renderPartialTemplate renders a bare fragment without the layout.
func renderPartialTemplate(w io.Writer, name string, data map[string]any) error {
	content, ok := templates[name]
	if !ok {
		return fmt.Errorf("template not found: %s", name)
	}
	tmpl, err := template.New(name).Funcs(templateFuncs).Parse(content)
	if err != nil {
		return fmt.Errorf("parse partial: %w", err)
	}
	return tmpl.ExecuteTemplate(w, name, data)
}

// templates holds all template content.
var templates = map[string]string{
	"layout": `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <script src="https://unpkg.com/htmx.org@1.9.10"></script>
    <script src="https://cdn.tailwindcss.com"></script>
    <style>
        .htmx-indicator { display: none; }
        .htmx-request .htmx-indicator { display: inline-block; }
    </style>
</head>
<body class="bg-gray-50 min-h-screen">
    <nav class="bg-white shadow-sm border-b">
        <div class="max-w-7xl mx-auto px-4 sm:px-6 lg:px-8">
            <div class="flex justify-between h-16">
                <div class="flex">
                    <a href="/" class="flex items-center px-2 py-2 text-xl font-bold text-indigo-600">
                        Campus
                    </a>
                    <div class="hidden sm:ml-6 sm:flex sm:space-x-8">
                        {{if .Session}}
                            {{if .Session.CanTeach}}
                            <a href="/teach" class="border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">Teaching</a>
                            <a href="/teach/review" class="border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">Review</a>
                            <a href="/teach/students" class="border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">Students</a>
                            <a href="/teach/payments" class="border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">Payments</a>
                            {{else}}
                            <a href="/dashboard" class="border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">Dashboard</a>
                            <a href="/courses" class="border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">Courses</a>
                            <a href="/schedule" class="border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">Schedule</a>
                            <a href="/messages" class="border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">Messages</a>
                            <a href="/certificates" class="border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">Certificates</a>
                            {{end}}
                        {{else}}
                        <a href="/pricing" class="border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">Pricing</a>
                        {{end}}
                    </div>
                </div>
                <div class="flex items-center">
                    {{if .Session}}
                    <span class="text-sm text-gray-500 mr-4">{{.Session.Name}}</span>
                    <a href="/logout" class="text-sm text-gray-500 hover:text-gray-700">Sign out</a>
                    {{else}}
                    <a href="/auth" class="text-sm font-medium text-white bg-indigo-600 hover:bg-indigo-700 px-4 py-2 rounded-md">Sign in</a>
                    {{end}}
                </div>
            </div>
        </div>
    </nav>

    <main class="max-w-7xl mx-auto py-6 sm:px-6 lg:px-8">
        {{template "content" .}}
    </main>
</body>
</html>`,

	"landing": `{{define "content"}}
<div class="text-center py-16">
    <h1 class="text-4xl font-extrabold text-gray-900 sm:text-5xl">
        Learn anywhere, on your schedule
    </h1>
    <p class="mt-4 max-w-2xl mx-auto text-lg text-gray-600">
        Live courses, timed exams, and certificates from teachers who care.
    </p>
    <div class="mt-8 flex justify-center gap-4">
        {{if .Session}}
        <a href="/dashboard" class="px-6 py-3 text-base font-medium rounded-md text-white bg-indigo-600 hover:bg-indigo-700">Go to dashboard</a>
        {{else}}
        <a href="/auth?tab=register" class="px-6 py-3 text-base font-medium rounded-md text-white bg-indigo-600 hover:bg-indigo-700">Get started</a>
        <a href="/pricing" class="px-6 py-3 text-base font-medium rounded-md text-indigo-700 bg-indigo-100 hover:bg-indigo-200">See pricing</a>
        {{end}}
    </div>
</div>
<div class="grid grid-cols-1 md:grid-cols-3 gap-6 mt-8">
    <div class="bg-white rounded-lg shadow p-6">
        <h3 class="text-lg font-semibold text-gray-900">Expert teachers</h3>
        <p class="mt-2 text-sm text-gray-600">Every course is reviewed before it reaches the catalog.</p>
    </div>
    <div class="bg-white rounded-lg shadow p-6">
        <h3 class="text-lg font-semibold text-gray-900">Timed exams</h3>
        <p class="mt-2 text-sm text-gray-600">Take exams with a live countdown and instant grading.</p>
    </div>
    <div class="bg-white rounded-lg shadow p-6">
        <h3 class="text-lg font-semibold text-gray-900">Certificates</h3>
        <p class="mt-2 text-sm text-gray-600">Earn a certificate for every course you complete.</p>
    </div>
</div>
{{end}}`,

	"auth": `{{define "content"}}
<div class="flex items-center justify-center py-12 px-4">
    <div class="max-w-md w-full space-y-8">
        <div>
            <h2 class="mt-6 text-center text-3xl font-extrabold text-gray-900">
                {{if eq .Tab "register"}}Create your account{{else}}Sign in to Campus{{end}}
            </h2>
            <p class="mt-2 text-center text-sm text-gray-600">
                {{if eq .Tab "register"}}
                Already have an account? <a href="/auth" class="text-indigo-600 hover:text-indigo-500">Sign in</a>
                {{else}}
                New here? <a href="/auth?tab=register" class="text-indigo-600 hover:text-indigo-500">Create an account</a>
                {{end}}
            </p>
        </div>
        {{if .Error}}
        <div class="rounded-md bg-red-50 p-4">
            <div class="text-sm text-red-700">{{.Error}}</div>
        </div>
        {{end}}
        {{if eq .Tab "register"}}
        <form class="mt-8 space-y-4" action="/auth/register" method="POST">
            <input name="name" type="text" required placeholder="Full name"
                   class="appearance-none rounded-md relative block w-full px-3 py-2 border border-gray-300 placeholder-gray-500 text-gray-900 focus:outline-none focus:ring-indigo-500 focus:border-indigo-500 sm:text-sm">
            <input name="email" type="email" required placeholder="Email"
                   class="appearance-none rounded-md relative block w-full px-3 py-2 border border-gray-300 placeholder-gray-500 text-gray-900 focus:outline-none focus:ring-indigo-500 focus:border-indigo-500 sm:text-sm">
            <input name="password" type="password" required placeholder="Password"
                   class="appearance-none rounded-md relative block w-full px-3 py-2 border border-gray-300 placeholder-gray-500 text-gray-900 focus:outline-none focus:ring-indigo-500 focus:border-indigo-500 sm:text-sm">
            <select name="role" class="block w-full px-3 py-2 border border-gray-300 rounded-md text-gray-900 sm:text-sm">
                <option value="Student">I want to learn</option>
                <option value="Teacher">I want to teach</option>
            </select>
            <button type="submit"
                    class="w-full flex justify-center py-2 px-4 border border-transparent text-sm font-medium rounded-md text-white bg-indigo-600 hover:bg-indigo-700">
                Create account
            </button>
        </form>
        {{else}}
        <form class="mt-8 space-y-4" action="/auth/login" method="POST">
            <input name="email" type="email" required placeholder="Email"
                   class="appearance-none rounded-md relative block w-full px-3 py-2 border border-gray-300 placeholder-gray-500 text-gray-900 focus:outline-none focus:ring-indigo-500 focus:border-indigo-500 sm:text-sm">
            <input name="password" type="password" required placeholder="Password"
                   class="appearance-none rounded-md relative block w-full px-3 py-2 border border-gray-300 placeholder-gray-500 text-gray-900 focus:outline-none focus:ring-indigo-500 focus:border-indigo-500 sm:text-sm">
            {{if .From}}<input type="hidden" name="from" value="{{.From}}">{{end}}
            <button type="submit"
                    class="w-full flex justify-center py-2 px-4 border border-transparent text-sm font-medium rounded-md text-white bg-indigo-600 hover:bg-indigo-700">
                Sign in
            </button>
        </form>
        {{end}}
    </div>
</div>
{{end}}`,

	"pricing": `{{define "content"}}
<h1 class="text-3xl font-bold text-gray-900 text-center">Plans</h1>
{{if .Error}}
<div class="mt-4 rounded-md bg-red-50 p-4 max-w-lg mx-auto">
    <div class="text-sm text-red-700">{{.Error}}</div>
</div>
{{end}}
<div class="mt-8 grid grid-cols-1 md:grid-cols-3 gap-6">
    {{range .Plans}}
    <div class="bg-white rounded-lg shadow p-6 flex flex-col">
        <h3 class="text-lg font-semibold text-gray-900">{{.Name}}</h3>
        <p class="mt-2 text-3xl font-bold text-gray-900">{{money .Price}}<span class="text-sm font-normal text-gray-500">/{{.Interval}}</span></p>
        <ul class="mt-4 space-y-2 text-sm text-gray-600 flex-1">
            {{range .Features}}<li>• {{.}}</li>{{end}}
        </ul>
        {{if $.Session}}
        <form action="/pricing/subscribe" method="POST" class="mt-6 space-y-2">
            <input type="hidden" name="plan" value="{{.ID}}">
            <input name="discount" type="text" placeholder="Discount code"
                   hx-post="/pricing/discount" hx-trigger="change delay:300ms" hx-include="closest form"
                   hx-target="#discount-{{.ID}}" hx-swap="innerHTML" hx-indicator="#checking-{{.ID}}"
                   class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
            <span id="checking-{{.ID}}" class="htmx-indicator text-xs text-gray-400">Checking…</span>
            <div id="discount-{{.ID}}"></div>
            <button type="submit" class="w-full py-2 px-4 text-sm font-medium rounded-md text-white bg-indigo-600 hover:bg-indigo-700">Choose {{.Name}}</button>
        </form>
        {{else}}
        <a href="/auth?tab=register" class="mt-6 w-full text-center py-2 px-4 text-sm font-medium rounded-md text-white bg-indigo-600 hover:bg-indigo-700">Get started</a>
        {{end}}
    </div>
    {{end}}
</div>
{{end}}`,

	"dashboard_student": `{{define "content"}}
<h1 class="text-2xl font-bold text-gray-900">Welcome back, {{.Session.Name}}</h1>
<div class="mt-6 grid grid-cols-1 md:grid-cols-3 gap-6">
    <div class="bg-white rounded-lg shadow p-6">
        <div class="text-sm font-medium text-gray-500">Courses</div>
        <div class="mt-1 text-3xl font-semibold text-gray-900">{{len .Courses}}</div>
    </div>
    <div class="bg-white rounded-lg shadow p-6">
        <div class="text-sm font-medium text-gray-500">Upcoming sessions</div>
        <div class="mt-1 text-3xl font-semibold text-gray-900">{{len .Schedule}}</div>
    </div>
    <div class="bg-white rounded-lg shadow p-6">
        <div class="text-sm font-medium text-gray-500">Unread messages</div>
        <div class="mt-1 text-3xl font-semibold text-gray-900">{{.Unread}}</div>
    </div>
</div>
<div class="mt-8 bg-white rounded-lg shadow">
    <div class="px-6 py-4 border-b flex justify-between items-center">
        <h2 class="text-lg font-semibold text-gray-900">My courses</h2>
        <a href="/courses" class="text-sm text-indigo-600 hover:text-indigo-500">Browse all</a>
    </div>
    <ul class="divide-y">
        {{range .Courses}}
        <li class="px-6 py-4 flex justify-between items-center">
            <div>
                <a href="/courses/{{.ID}}" class="text-sm font-medium text-indigo-600 hover:text-indigo-500">{{.Title}}</a>
                <div class="text-sm text-gray-500">{{.Instructor}} · {{.Level}}</div>
            </div>
            <a href="/courses/{{.ID}}/exams" class="text-sm text-gray-500 hover:text-gray-700">Exams</a>
        </li>
        {{else}}
        <li class="px-6 py-8 text-center text-sm text-gray-500">No courses yet. <a href="/courses" class="text-indigo-600">Find one</a>.</li>
        {{end}}
    </ul>
</div>
{{end}}`,

	"dashboard_teacher": `{{define "content"}}
<h1 class="text-2xl font-bold text-gray-900">Teaching</h1>
<div class="mt-6 grid grid-cols-1 md:grid-cols-3 gap-6">
    <div class="bg-white rounded-lg shadow p-6">
        <div class="text-sm font-medium text-gray-500">Pending review</div>
        <div class="mt-1 text-3xl font-semibold text-gray-900">{{.Pending}}</div>
        <a href="/teach/review" class="text-sm text-indigo-600 hover:text-indigo-500">Review queue</a>
    </div>
    <div class="bg-white rounded-lg shadow p-6">
        <div class="text-sm font-medium text-gray-500">Students</div>
        <div class="mt-1 text-3xl font-semibold text-gray-900">{{.Students}}</div>
        <a href="/teach/students" class="text-sm text-indigo-600 hover:text-indigo-500">Roster</a>
    </div>
    <div class="bg-white rounded-lg shadow p-6">
        <div class="text-sm font-medium text-gray-500">Courses</div>
        <div class="mt-1 text-3xl font-semibold text-gray-900">{{len .Courses}}</div>
    </div>
</div>
<div class="mt-8 grid grid-cols-1 lg:grid-cols-2 gap-6">
    <div class="bg-white rounded-lg shadow">
        <div class="px-6 py-4 border-b"><h2 class="text-lg font-semibold text-gray-900">Courses</h2></div>
        <ul class="divide-y">
            {{range .Courses}}
            <li class="px-6 py-4 flex justify-between items-center">
                <div>
                    <div class="text-sm font-medium text-gray-900">{{.Title}}</div>
                    <span class="inline-flex px-2 text-xs font-semibold rounded-full {{courseStatusColor (printf "%s" .Status)}}">{{.Status}}</span>
                </div>
                <div class="flex gap-3">
                    <a href="/teach/courses/{{.ID}}/edit" class="text-sm text-indigo-600 hover:text-indigo-500">Edit</a>
                    <a href="/teach/courses/{{.ID}}/exams" class="text-sm text-indigo-600 hover:text-indigo-500">Exams</a>
                    <form action="/teach/courses/{{.ID}}/delete" method="POST" onsubmit="return confirm('Delete this course?')">
                        <button type="submit" class="text-sm text-red-600 hover:text-red-500">Delete</button>
                    </form>
                </div>
            </li>
            {{else}}
            <li class="px-6 py-8 text-center text-sm text-gray-500">No courses.</li>
            {{end}}
        </ul>
    </div>
    <div class="bg-white rounded-lg shadow">
        <div class="px-6 py-4 border-b flex justify-between items-center">
            <h2 class="text-lg font-semibold text-gray-900">Recent payments</h2>
            <a href="/teach/payments" class="text-sm text-indigo-600 hover:text-indigo-500">All payments</a>
        </div>
        <ul class="divide-y">
            {{range .Payments}}
            <li class="px-6 py-4 flex justify-between items-center text-sm">
                <span class="text-gray-900">{{.StudentName}}</span>
                <span class="text-gray-500">{{money .Amount}}</span>
                <span class="inline-flex px-2 text-xs font-semibold rounded-full {{paymentStatusColor (printf "%s" .Status)}}">{{.Status}}</span>
            </li>
            {{else}}
            <li class="px-6 py-8 text-center text-sm text-gray-500">No payments yet.</li>
            {{end}}
        </ul>
    </div>
</div>
{{end}}`,

	"courses": `{{define "content"}}
<h1 class="text-2xl font-bold text-gray-900">Courses</h1>
<div class="mt-6 grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-6">
    {{range .Courses}}
    <div class="bg-white rounded-lg shadow overflow-hidden flex flex-col">
        {{if .ImageURL}}<img src="{{.ImageURL}}" alt="" class="h-40 w-full object-cover">{{end}}
        <div class="p-6 flex-1 flex flex-col">
            <div class="flex justify-between items-start">
                <h3 class="text-lg font-semibold text-gray-900">{{.Title}}</h3>
                <span class="text-sm text-yellow-500">{{stars .Rating}}</span>
            </div>
            <p class="mt-2 text-sm text-gray-600 flex-1">{{truncate .Description 120}}</p>
            <div class="mt-4 flex justify-between items-center text-sm text-gray-500">
                <span>{{.Instructor}} · {{.Level}}</span>
                <span class="font-semibold text-gray-900">{{money .Price}}</span>
            </div>
            <a href="/courses/{{.ID}}" class="mt-4 w-full text-center py-2 px-4 text-sm font-medium rounded-md text-white bg-indigo-600 hover:bg-indigo-700">View course</a>
        </div>
    </div>
    {{else}}
    <p class="text-sm text-gray-500">No courses available yet.</p>
    {{end}}
</div>
{{end}}`,

	"course_detail": `{{define "content"}}
<div class="bg-white rounded-lg shadow p-6">
    <div class="flex justify-between items-start">
        <div>
            <h1 class="text-2xl font-bold text-gray-900">{{.Course.Title}}</h1>
            <p class="mt-1 text-sm text-gray-500">{{.Course.Instructor}} · {{.Course.Category}} · {{.Course.Duration}}</p>
        </div>
        <span class="text-sm text-yellow-500">{{stars .Course.Rating}} ({{.Course.EnrolledStudents}} students)</span>
    </div>
    <p class="mt-4 text-gray-700">{{.Course.Description}}</p>
    <div class="mt-6 flex gap-4">
        <form action="/courses/{{.Course.ID}}/enroll" method="POST">
            <button type="submit" class="py-2 px-6 text-sm font-medium rounded-md text-white bg-indigo-600 hover:bg-indigo-700">Enroll · {{money .Course.Price}}</button>
        </form>
        <a href="/courses/{{.Course.ID}}/exams" class="py-2 px-6 text-sm font-medium rounded-md text-indigo-700 bg-indigo-100 hover:bg-indigo-200">Exams</a>
    </div>
</div>
<div class="mt-8 bg-white rounded-lg shadow">
    <div class="px-6 py-4 border-b"><h2 class="text-lg font-semibold text-gray-900">Reviews</h2></div>
    <ul class="divide-y">
        {{range .Reviews}}
        <li class="px-6 py-4">
            <div class="flex justify-between">
                <span class="text-sm font-medium text-gray-900">{{.UserName}}</span>
                <span class="text-sm text-yellow-500">{{starsInt .Rating}}</span>
            </div>
            <p class="mt-1 text-sm text-gray-600">{{.Comment}}</p>
        </li>
        {{else}}
        <li class="px-6 py-8 text-center text-sm text-gray-500">No reviews yet.</li>
        {{end}}
    </ul>
</div>
{{end}}`,

	"exams": `{{define "content"}}
<div class="flex justify-between items-center">
    <h1 class="text-2xl font-bold text-gray-900">{{.Course.Title}} - Exams</h1>
    <a href="/courses/{{.Course.ID}}" class="text-sm text-indigo-600 hover:text-indigo-500">Back to course</a>
</div>
{{if .Error}}
<div class="mt-4 rounded-md bg-red-50 p-4">
    <div class="text-sm text-red-700">{{.Error}}</div>
</div>
{{end}}
<div class="mt-6 bg-white rounded-lg shadow">
    <ul class="divide-y">
        {{range .Exams}}
        <li class="px-6 py-4 flex justify-between items-center">
            <div>
                <div class="text-sm font-medium text-gray-900">{{.Title}}</div>
                <div class="text-sm text-gray-500">{{.Duration}} min · {{.TotalPoints}} points · pass at {{.PassingScore}}</div>
            </div>
            <div class="flex items-center gap-4">
                <span class="inline-flex px-2 text-xs font-semibold rounded-full {{examStatusColor (printf "%s" .Status)}}">{{examStatusLabel (printf "%s" .Status)}}</span>
                {{if .Completed}}
                    {{if .Score}}<span class="text-sm font-semibold text-gray-900">{{deref .Score}} / {{.TotalPoints}}</span>{{end}}
                {{else}}
                <form action="/courses/{{$.Course.ID}}/exams/{{.ID}}/start" method="POST">
                    <button type="submit" class="py-1.5 px-4 text-sm font-medium rounded-md text-white bg-indigo-600 hover:bg-indigo-700">Start</button>
                </form>
                {{end}}
            </div>
        </li>
        {{else}}
        <li class="px-6 py-8 text-center text-sm text-gray-500">No exams in this course.</li>
        {{end}}
    </ul>
</div>
{{end}}`,

	"exam_attempt": `{{define "content"}}
<div class="flex justify-between items-center bg-white rounded-lg shadow px-6 py-4 sticky top-0">
    <h1 class="text-xl font-bold text-gray-900">{{.Exam.Title}}</h1>
    <div class="flex items-center gap-6">
        <span class="text-sm text-gray-500">{{.Answered}} / {{len .Exam.Questions}} answered</span>
        <div id="timer" hx-get="/exam/timer" hx-trigger="every 1s" hx-swap="innerHTML">
            {{template "partial_timer" .}}
        </div>
    </div>
</div>

{{if .SubmitErr}}
<div class="mt-4 rounded-md bg-red-50 p-4">
    <div class="text-sm text-red-700">Submission failed: {{.SubmitErr}}. Your answers are safe.</div>
    <div class="mt-3 flex gap-3">
        <form action="/exam/submit/confirm" method="POST">
            <button type="submit" class="py-1.5 px-4 text-sm font-medium rounded-md text-white bg-indigo-600 hover:bg-indigo-700">Try again</button>
        </form>
        <form action="/exam/submit/cancel" method="POST">
            <button type="submit" class="py-1.5 px-4 text-sm font-medium rounded-md text-gray-700 bg-gray-100 hover:bg-gray-200">Back to questions</button>
        </form>
    </div>
</div>
{{else if .Confirming}}
<div class="mt-4 rounded-md bg-yellow-50 p-4">
    <div class="text-sm text-yellow-800">
        Submit your exam? {{.Answered}} of {{len .Exam.Questions}} questions answered.
        Unanswered questions score zero.
    </div>
    <div class="mt-3 flex gap-3">
        <form action="/exam/submit/confirm" method="POST">
            <button type="submit" class="py-1.5 px-4 text-sm font-medium rounded-md text-white bg-indigo-600 hover:bg-indigo-700">Submit exam</button>
        </form>
        <form action="/exam/submit/cancel" method="POST">
            <button type="submit" class="py-1.5 px-4 text-sm font-medium rounded-md text-gray-700 bg-gray-100 hover:bg-gray-200">Keep working</button>
        </form>
    </div>
</div>
{{end}}

<div class="mt-6 space-y-4">
    {{$answers := .Answers}}
    {{range $i, $q := .Exam.Questions}}
    <div id="question-{{$q.ID}}">
        {{template "partial_question" (dict "Question" $q "Index" $i "Selected" (answerFor $answers $q.ID))}}
    </div>
    {{end}}
</div>

{{if not .Confirming}}
<div class="mt-8 flex justify-end">
    <form action="/exam/submit" method="POST">
        <button type="submit" class="py-2 px-6 text-sm font-medium rounded-md text-white bg-indigo-600 hover:bg-indigo-700">Submit exam</button>
    </form>
</div>
{{end}}
{{end}}`,

	"partial_timer": `{{if .Expired}}
<span class="text-lg font-mono font-bold text-red-600">0:00</span>
{{else}}
<span class="text-lg font-mono font-bold text-gray-900">{{.Remaining}}</span>
{{end}}`,

	"partial_discount": `{{if .Error}}
<p class="text-xs text-red-600">{{.Error}}</p>
{{else if .Result}}
<p class="text-xs text-green-700">Code {{.Result.Code}} applied: {{money .Result.FinalAmount}} (was {{money .Result.OriginalAmount}})</p>
{{end}}`,

	"partial_question": `<div class="bg-white rounded-lg shadow p-6">
    <div class="flex justify-between">
        <h3 class="text-sm font-semibold text-gray-900">{{add .Index 1}}. {{.Question.Text}}</h3>
        <span class="text-xs text-gray-500">{{.Question.Points}} pts</span>
    </div>
    <div class="mt-4 space-y-2">
        {{$q := .Question}}
        {{$sel := .Selected}}
        {{range $j, $opt := .Question.Options}}
        <label class="flex items-center gap-3 p-3 rounded-md border {{if eq $j $sel}}border-indigo-500 bg-indigo-50{{else}}border-gray-200 hover:bg-gray-50{{end}} cursor-pointer">
            <input type="radio" name="q-{{$q.ID}}" value="{{$j}}" {{if eq $j $sel}}checked{{end}}
                   hx-post="/exam/answer" hx-vals='{"question":"{{$q.ID}}","option":"{{$j}}"}'
                   hx-target="#question-{{$q.ID}}" hx-swap="innerHTML"
                   class="text-indigo-600 focus:ring-indigo-500">
            <span class="text-sm text-gray-700">{{$opt}}</span>
        </label>
        {{end}}
    </div>
</div>`,

	"exam_result": `{{define "content"}}
<div class="max-w-lg mx-auto bg-white rounded-lg shadow p-8 text-center">
    <h1 class="text-2xl font-bold text-gray-900">{{.Exam.Title}}</h1>
    {{if .Result.Passed}}
    <div class="mt-6 text-5xl">🎉</div>
    <p class="mt-4 text-lg font-semibold text-green-700">You passed!</p>
    {{else}}
    <p class="mt-6 text-lg font-semibold text-red-700">Not this time.</p>
    {{end}}
    <p class="mt-2 text-3xl font-bold text-gray-900">{{.Result.Score}} / {{.Result.TotalPoints}}</p>
    <form action="/exam/finish" method="POST" class="mt-8">
        <button type="submit" class="py-2 px-6 text-sm font-medium rounded-md text-white bg-indigo-600 hover:bg-indigo-700">Back to exams</button>
    </form>
</div>
{{end}}`,

	"exam_form": `{{define "content"}}
<h1 class="text-2xl font-bold text-gray-900">{{if .ExamID}}Edit exam{{else}}New exam{{end}}</h1>
{{if .Problems}}
<div class="mt-4 rounded-md bg-red-50 p-4">
    <ul class="text-sm text-red-700 list-disc list-inside">
        {{range .Problems}}<li>{{.}}</li>{{end}}
    </ul>
</div>
{{end}}
<form method="POST" action="{{if .ExamID}}/teach/courses/{{.CourseID}}/exams/{{.ExamID}}{{else}}/teach/courses/{{.CourseID}}/exams{{end}}"
      class="mt-6 space-y-6">
    <div class="bg-white rounded-lg shadow p-6 grid grid-cols-1 md:grid-cols-2 gap-4">
        <div class="md:col-span-2">
            <label class="block text-sm font-medium text-gray-700">Title</label>
            <input name="title" type="text" value="{{.Draft.Title}}" class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
        </div>
        <div class="md:col-span-2">
            <label class="block text-sm font-medium text-gray-700">Description</label>
            <textarea name="description" rows="2" class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">{{.Draft.Description}}</textarea>
        </div>
        <div>
            <label class="block text-sm font-medium text-gray-700">Duration (minutes)</label>
            <input name="duration" type="number" value="{{.Draft.Duration}}" class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
        </div>
        <div>
            <label class="block text-sm font-medium text-gray-700">Total points</label>
            <input name="total_points" type="number" value="{{.Draft.TotalPoints}}" class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
        </div>
        <div>
            <label class="block text-sm font-medium text-gray-700">Passing score</label>
            <input name="passing_score" type="number" value="{{.Draft.PassingScore}}" class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
        </div>
        <div class="grid grid-cols-2 gap-4">
            <div>
                <label class="block text-sm font-medium text-gray-700">Opens</label>
                <input name="start_date" type="date" value="{{.Draft.StartDate}}" class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
            </div>
            <div>
                <label class="block text-sm font-medium text-gray-700">Closes</label>
                <input name="end_date" type="date" value="{{.Draft.EndDate}}" class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
            </div>
        </div>
    </div>

    {{range $i, $q := .Draft.Questions}}
    <div class="bg-white rounded-lg shadow p-6">
        <h3 class="text-sm font-semibold text-gray-900">Question {{add $i 1}}</h3>
        <input name="question_{{$i}}" type="text" value="{{$q.Text}}" placeholder="Question text"
               class="mt-2 block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
        <div class="mt-4 grid grid-cols-1 md:grid-cols-2 gap-3">
            {{range $j := seq 4}}
            <div class="flex items-center gap-2">
                <input type="radio" name="correct_{{$i}}" value="{{$j}}" {{if eq $j $q.CorrectAnswer}}checked{{end}} class="text-indigo-600">
                <input name="option_{{$i}}_{{$j}}" type="text" value="{{index $q.Options $j}}" placeholder="Option {{add $j 1}}"
                       class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
            </div>
            {{end}}
        </div>
        <div class="mt-3 w-40">
            <label class="block text-xs font-medium text-gray-500">Points</label>
            <input name="points_{{$i}}" type="number" value="{{$q.Points}}" class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
        </div>
    </div>
    {{end}}

    <div class="flex justify-end gap-3">
        <a href="/teach" class="py-2 px-6 text-sm font-medium rounded-md text-gray-700 bg-gray-100 hover:bg-gray-200">Cancel</a>
        <button type="submit" class="py-2 px-6 text-sm font-medium rounded-md text-white bg-indigo-600 hover:bg-indigo-700">Save exam</button>
    </div>
</form>
{{end}}`,

	"course_form": `{{define "content"}}
<h1 class="text-2xl font-bold text-gray-900">Edit course</h1>
{{if .Problems}}
<div class="mt-4 rounded-md bg-red-50 p-4">
    <ul class="text-sm text-red-700 list-disc list-inside">
        {{range .Problems}}<li>{{.}}</li>{{end}}
    </ul>
</div>
{{end}}
<form method="POST" action="/teach/courses/{{.Course.ID}}" class="mt-6 bg-white rounded-lg shadow p-6 grid grid-cols-1 md:grid-cols-2 gap-4">
    <div class="md:col-span-2">
        <label class="block text-sm font-medium text-gray-700">Title</label>
        <input name="title" type="text" value="{{.Course.Title}}" class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
    </div>
    <div class="md:col-span-2">
        <label class="block text-sm font-medium text-gray-700">Description</label>
        <textarea name="description" rows="3" class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">{{.Course.Description}}</textarea>
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Price</label>
        <input name="price" type="number" step="0.01" value="{{.Course.Price}}" class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Duration</label>
        <input name="duration" type="text" value="{{.Course.Duration}}" placeholder="e.g. 6 weeks" class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Level</label>
        <select name="level" class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
            <option value="beginner" {{if eq .Course.Level "beginner"}}selected{{end}}>Beginner</option>
            <option value="intermediate" {{if eq .Course.Level "intermediate"}}selected{{end}}>Intermediate</option>
            <option value="advanced" {{if eq .Course.Level "advanced"}}selected{{end}}>Advanced</option>
        </select>
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Category</label>
        <input name="category" type="text" value="{{.Course.Category}}" class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
    </div>
    <div class="md:col-span-2">
        <label class="block text-sm font-medium text-gray-700">Image URL</label>
        <input name="image_url" type="text" value="{{.Course.ImageURL}}" class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
    </div>
    <div class="md:col-span-2 flex justify-end gap-3">
        <a href="/teach" class="py-2 px-6 text-sm font-medium rounded-md text-gray-700 bg-gray-100 hover:bg-gray-200">Cancel</a>
        <button type="submit" class="py-2 px-6 text-sm font-medium rounded-md text-white bg-indigo-600 hover:bg-indigo-700">Save course</button>
    </div>
</form>
{{end}}`,

	"teach_exams": `{{define "content"}}
<div class="flex justify-between items-center">
    <h1 class="text-2xl font-bold text-gray-900">{{.Course.Title}} - Exams</h1>
    <a href="/teach/courses/{{.Course.ID}}/exams/new" class="py-2 px-4 text-sm font-medium rounded-md text-white bg-indigo-600 hover:bg-indigo-700">New exam</a>
</div>
<div class="mt-6 bg-white rounded-lg shadow">
    <ul class="divide-y">
        {{range .Exams}}
        <li class="px-6 py-4 flex justify-between items-center">
            <div>
                <div class="text-sm font-medium text-gray-900">{{.Title}}</div>
                <div class="text-sm text-gray-500">{{.Duration}} min · {{len .Questions}} questions · {{.TotalPoints}} points</div>
            </div>
            <div class="flex gap-3">
                <a href="/teach/courses/{{$.Course.ID}}/exams/{{.ID}}/edit" class="text-sm text-indigo-600 hover:text-indigo-500">Edit</a>
                <form action="/teach/courses/{{$.Course.ID}}/exams/{{.ID}}/delete" method="POST" onsubmit="return confirm('Delete this exam?')">
                    <button type="submit" class="text-sm text-red-600 hover:text-red-500">Delete</button>
                </form>
            </div>
        </li>
        {{else}}
        <li class="px-6 py-8 text-center text-sm text-gray-500">No exams yet. <a href="/teach/courses/{{$.Course.ID}}/exams/new" class="text-indigo-600">Create one</a>.</li>
        {{end}}
    </ul>
</div>
{{end}}`,

	"review": `{{define "content"}}
<h1 class="text-2xl font-bold text-gray-900">Course review</h1>
{{if .Error}}
<div class="mt-4 rounded-md bg-red-50 p-4">
    <div class="text-sm text-red-700">{{.Error}}</div>
</div>
{{end}}
<div class="mt-6 bg-white rounded-lg shadow">
    <ul class="divide-y">
        {{range .Courses}}
        <li class="px-6 py-4 flex justify-between items-center">
            <div>
                <div class="text-sm font-medium text-gray-900">{{.Title}}</div>
                <div class="text-sm text-gray-500">{{.Instructor}} · {{money .Price}} · {{.Category}}</div>
            </div>
            <div class="flex gap-3">
                <form action="/teach/courses/{{.ID}}/approve" method="POST">
                    <button type="submit" class="py-1.5 px-4 text-sm font-medium rounded-md text-white bg-green-600 hover:bg-green-700">Approve</button>
                </form>
                <form action="/teach/courses/{{.ID}}/reject" method="POST">
                    <button type="submit" class="py-1.5 px-4 text-sm font-medium rounded-md text-white bg-red-600 hover:bg-red-700">Reject</button>
                </form>
            </div>
        </li>
        {{else}}
        <li class="px-6 py-8 text-center text-sm text-gray-500">Nothing waiting for review.</li>
        {{end}}
    </ul>
</div>
{{end}}`,

	"students": `{{define "content"}}
<h1 class="text-2xl font-bold text-gray-900">Students</h1>
<div class="mt-6 bg-white rounded-lg shadow overflow-hidden">
    <table class="min-w-full divide-y divide-gray-200">
        <thead class="bg-gray-50">
            <tr>
                <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Name</th>
                <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Email</th>
                <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Courses</th>
                <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Joined</th>
            </tr>
        </thead>
        <tbody class="divide-y divide-gray-200">
            {{range .Students}}
            <tr>
                <td class="px-6 py-4 text-sm font-medium"><a href="/teach/students/{{.ID}}" class="text-indigo-600 hover:text-indigo-500">{{.Name}}</a></td>
                <td class="px-6 py-4 text-sm text-gray-500">{{.Email}}</td>
                <td class="px-6 py-4 text-sm text-gray-500">{{.EnrolledCourses}}</td>
                <td class="px-6 py-4 text-sm text-gray-500">{{formatDate .JoinedAt}}</td>
            </tr>
            {{else}}
            <tr><td colspan="4" class="px-6 py-8 text-center text-sm text-gray-500">No students yet.</td></tr>
            {{end}}
        </tbody>
    </table>
</div>
{{end}}`,

	"student_detail": `{{define "content"}}
<div class="max-w-lg mx-auto bg-white rounded-lg shadow p-8">
    <h1 class="text-2xl font-bold text-gray-900">{{.Student.Name}}</h1>
    <dl class="mt-6 space-y-3 text-sm">
        <div class="flex justify-between"><dt class="text-gray-500">Email</dt><dd class="text-gray-900">{{.Student.Email}}</dd></div>
        {{if .Student.Phone}}
        <div class="flex justify-between"><dt class="text-gray-500">Phone</dt><dd class="text-gray-900">{{.Student.Phone}}</dd></div>
        {{end}}
        <div class="flex justify-between"><dt class="text-gray-500">Enrolled courses</dt><dd class="text-gray-900">{{.Student.EnrolledCourses}}</dd></div>
        <div class="flex justify-between"><dt class="text-gray-500">Average score</dt><dd class="text-gray-900">{{printf "%.1f" .Student.AverageScore}}</dd></div>
        <div class="flex justify-between"><dt class="text-gray-500">Joined</dt><dd class="text-gray-900">{{formatDate .Student.JoinedAt}}</dd></div>
    </dl>
    <a href="/teach/students" class="mt-8 inline-block text-sm text-indigo-600 hover:text-indigo-500">Back to roster</a>
</div>
{{end}}`,

	"payments": `{{define "content"}}
<h1 class="text-2xl font-bold text-gray-900">Payments</h1>
<div class="mt-6 bg-white rounded-lg shadow overflow-hidden">
    <table class="min-w-full divide-y divide-gray-200">
        <thead class="bg-gray-50">
            <tr>
                <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Student</th>
                <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Amount</th>
                <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Status</th>
                <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Date</th>
            </tr>
        </thead>
        <tbody class="divide-y divide-gray-200">
            {{range .Payments}}
            <tr>
                <td class="px-6 py-4 text-sm font-medium text-gray-900">{{.StudentName}}</td>
                <td class="px-6 py-4 text-sm text-gray-500">{{money .Amount}}</td>
                <td class="px-6 py-4"><span class="inline-flex px-2 text-xs font-semibold rounded-full {{paymentStatusColor (printf "%s" .Status)}}">{{.Status}}</span></td>
                <td class="px-6 py-4 text-sm text-gray-500">{{formatTime .Timestamp}}</td>
            </tr>
            {{else}}
            <tr><td colspan="4" class="px-6 py-8 text-center text-sm text-gray-500">No payments yet.</td></tr>
            {{end}}
        </tbody>
    </table>
</div>
{{end}}`,

	"schedule": `{{define "content"}}
<h1 class="text-2xl font-bold text-gray-900">Schedule</h1>
<div class="mt-6 bg-white rounded-lg shadow">
    <ul class="divide-y">
        {{range .Schedule}}
        <li class="px-6 py-4 flex justify-between items-center">
            <div>
                <div class="text-sm font-medium text-gray-900">{{.Title}}</div>
                <div class="text-sm text-gray-500">{{.Type}}</div>
            </div>
            <div class="text-sm text-gray-500">{{formatTime .StartsAt}} - {{formatTime .EndsAt}}</div>
        </li>
        {{else}}
        <li class="px-6 py-8 text-center text-sm text-gray-500">Nothing scheduled.</li>
        {{end}}
    </ul>
</div>
{{end}}`,

	"messages": `{{define "content"}}
<h1 class="text-2xl font-bold text-gray-900">Messages</h1>
<div class="mt-6 bg-white rounded-lg shadow">
    <ul class="divide-y">
        {{range .Messages}}
        <li class="px-6 py-4 {{if not .Read}}bg-indigo-50{{end}}">
            <div class="flex justify-between items-center">
                <div>
                    <span class="text-sm font-medium text-gray-900">{{.From}}</span>
                    <span class="ml-2 text-sm text-gray-600">{{.Subject}}</span>
                </div>
                <div class="flex items-center gap-4">
                    <span class="text-sm text-gray-500">{{formatTime .SentAt}}</span>
                    {{if not .Read}}
                    <form action="/messages/{{.ID}}/read" method="POST">
                        <button type="submit" class="text-sm text-indigo-600 hover:text-indigo-500">Mark read</button>
                    </form>
                    {{end}}
                </div>
            </div>
            <p class="mt-1 text-sm text-gray-600">{{.Body}}</p>
        </li>
        {{else}}
        <li class="px-6 py-8 text-center text-sm text-gray-500">Inbox empty.</li>
        {{end}}
    </ul>
</div>
{{end}}`,

	"certificates": `{{define "content"}}
<h1 class="text-2xl font-bold text-gray-900">Certificates</h1>
<div class="mt-6 grid grid-cols-1 md:grid-cols-2 gap-6">
    {{range .Certificates}}
    <div class="bg-white rounded-lg shadow p-6 flex justify-between items-center">
        <div>
            <div class="text-sm font-medium text-gray-900">{{.CourseTitle}}</div>
            <div class="text-sm text-gray-500">Issued {{formatDate .IssuedAt}}</div>
        </div>
        {{if .DownloadURL}}
        <a href="{{.DownloadURL}}" class="text-sm text-indigo-600 hover:text-indigo-500">Download</a>
        {{end}}
    </div>
    {{else}}
    <p class="text-sm text-gray-500">Complete a course to earn your first certificate.</p>
    {{end}}
</div>
{{end}}`,

	"error": `{{define "content"}}
<div class="max-w-lg mx-auto bg-white rounded-lg shadow p-8 text-center">
    <h1 class="text-xl font-bold text-gray-900">{{.Message}}</h1>
    {{if .Detail}}<p class="mt-2 text-sm text-gray-600">{{.Detail}}</p>{{end}}
    <a href="/dashboard" class="mt-6 inline-block py-2 px-6 text-sm font-medium rounded-md text-white bg-indigo-600 hover:bg-indigo-700">Back to dashboard</a>
</div>
{{end}}`,
}
