package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/me/campus/pkg/model"
)

func newExamsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exams <course-id>",
		Short: "List a course's exams",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exams, err := client.ListExams(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("list exams: %w", err)
			}

			if len(exams) == 0 {
				fmt.Println("No exams in this course.")
				return nil
			}

			fmt.Printf("%-36s  %-30s  %-8s  %-8s  %s\n", "ID", "TITLE", "MINUTES", "POINTS", "STATUS")
			fmt.Printf("%-36s  %-30s  %-8s  %-8s  %s\n", "----", "-----", "-------", "------", "------")
			for _, e := range exams {
				fmt.Printf("%-36s  %-30s  %-8d  %-8d  %s\n", e.ID, e.Title, e.Duration, e.TotalPoints, e.Status)
			}
			return nil
		},
	}

	cmd.AddCommand(newExamCreateCmd(), newExamDeleteCmd())
	return cmd
}

func newExamCreateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create <course-id>",
		Short: "Create an exam from a JSON file",
		Long:  "Reads an exam definition (title, duration, questions) from a JSON file and adds it to the course.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read exam file: %w", err)
			}

			var draft model.ExamDraft
			if err := json.Unmarshal(data, &draft); err != nil {
				return fmt.Errorf("parse exam file: %w", err)
			}

			created, err := client.CreateExam(cmd.Context(), args[0], draft)
			if err != nil {
				return fmt.Errorf("create exam: %w", err)
			}

			fmt.Printf("Exam %s created (%d questions).\n", created.ID, len(created.Questions))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the exam definition JSON")
	cmd.MarkFlagRequired("file")
	return cmd
}

func newExamDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <course-id> <exam-id>",
		Short: "Delete an exam",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.DeleteExam(cmd.Context(), args[0], args[1]); err != nil {
				return fmt.Errorf("delete exam: %w", err)
			}
			fmt.Printf("Exam %s deleted.\n", args[1])
			return nil
		},
	}
}
