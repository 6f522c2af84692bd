package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/syedfiras/student-attendance-app/core/attendance"
)

func (cli *commandLine) listStudents(args []string) error {
	cmd := flag.NewFlagSet("students", flag.ExitOnError)
	classID := cmd.String("class", "", "The class id.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *classID == "" {
		cmd.Usage()
		return errHelp
	}

	students, err := cli.svc.StudentsByClass(context.Background(), *classID)
	if err != nil {
		return err
	}
	if len(students) == 0 {
		fmt.Println("No students yet.")
		return nil
	}
	for _, stu := range students {
		fmt.Printf("%s\t%s", stu.ID, stu.Name)
		if stu.RollNo != "" {
			fmt.Printf("\troll: %s", stu.RollNo)
		}
		if stu.USN != "" {
			fmt.Printf("\tusn: %s", stu.USN)
		}
		fmt.Println()
	}
	return nil
}

func (cli *commandLine) addStudent(args []string) error {
	cmd := flag.NewFlagSet("addstudent", flag.ExitOnError)
	classID := cmd.String("class", "", "The class id.")
	name := cmd.String("name", "", "The student name.")
	rollNo := cmd.String("roll", "", "The student roll number.")
	usn := cmd.String("usn", "", "The student USN.")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	stu, err := cli.svc.CreateStudent(context.Background(), attendance.NewStudent{
		ClassID: *classID,
		Name:    *name,
		RollNo:  *rollNo,
		USN:     *usn,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Created student %s\n", stu.ID)
	return nil
}

func (cli *commandLine) editStudent(args []string) error {
	cmd := flag.NewFlagSet("editstudent", flag.ExitOnError)
	id := cmd.String("id", "", "The student id.")
	name := cmd.String("name", "", "The student name.")
	rollNo := cmd.String("roll", "", "The student roll number.")
	usn := cmd.String("usn", "", "The student USN.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		cmd.Usage()
		return errHelp
	}

	stu, err := cli.svc.UpdateStudent(context.Background(), *id, attendance.UpdateStudent{
		Name:   *name,
		RollNo: *rollNo,
		USN:    *usn,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Updated student %s\n", stu.ID)
	return nil
}

func (cli *commandLine) removeStudent(args []string) error {
	cmd := flag.NewFlagSet("rmstudent", flag.ExitOnError)
	id := cmd.String("id", "", "The student id.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		cmd.Usage()
		return errHelp
	}

	if !confirmFunc("Delete student and their attendance marks?") {
		return nil
	}
	if err := cli.svc.DeleteStudent(context.Background(), *id); err != nil {
		return err
	}
	fmt.Printf("Deleted student %s\n", *id)
	return nil
}
