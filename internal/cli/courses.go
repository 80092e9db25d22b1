package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/me/campus/pkg/model"
)

func newCoursesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "courses",
		Short: "List courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			courses, err := client.ListCourses(cmd.Context())
			if err != nil {
				return fmt.Errorf("list courses: %w", err)
			}

			if len(courses) == 0 {
				fmt.Println("No courses found.")
				return nil
			}

			fmt.Printf("%-36s  %-30s  %-20s  %-10s  %s\n", "ID", "TITLE", "INSTRUCTOR", "STATUS", "PRICE")
			fmt.Printf("%-36s  %-30s  %-20s  %-10s  %s\n", "----", "-----", "----------", "------", "-----")
			for _, c := range courses {
				fmt.Printf("%-36s  %-30s  %-20s  %-10s  $%.2f\n", c.ID, c.Title, c.Instructor, c.Status, c.Price)
			}
			return nil
		},
	}

	cmd.AddCommand(newCourseCreateCmd(), newCourseApproveCmd(), newCourseRejectCmd())
	return cmd
}

func newCourseCreateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a course from a JSON file",
		Long:  "Reads a course definition (title, description, price) from a JSON file and submits it for review.",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read course file: %w", err)
			}

			var course model.Course
			if err := json.Unmarshal(data, &course); err != nil {
				return fmt.Errorf("parse course file: %w", err)
			}

			created, err := client.CreateCourse(cmd.Context(), course)
			if err != nil {
				return fmt.Errorf("create course: %w", err)
			}

			fmt.Printf("Course %s submitted for review.\n", created.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the course definition JSON")
	cmd.MarkFlagRequired("file")
	return cmd
}

func newCourseApproveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "approve <course-id>",
		Short: "Approve a pending course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.ApproveCourse(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("approve course: %w", err)
			}
			fmt.Printf("Course %s approved.\n", args[0])
			return nil
		},
	}
}

func newCourseRejectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reject <course-id>",
		Short: "Reject a pending course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.RejectCourse(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("reject course: %w", err)
			}
			fmt.Printf("Course %s rejected.\n", args[0])
			return nil
		},
	}
}
