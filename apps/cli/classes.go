package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/syedfiras/student-attendance-app/core/attendance"
)

func (cli *commandLine) listClasses() error {
	classes, err := cli.svc.Classes(context.Background())
	if err != nil {
		return err
	}
	if len(classes) == 0 {
		fmt.Println("No classes yet.")
		return nil
	}
	for _, cls := range classes {
		if cls.Section != "" {
			fmt.Printf("%s\t%s (%s)\n", cls.ID, cls.Name, cls.Section)
		} else {
			fmt.Printf("%s\t%s\n", cls.ID, cls.Name)
		}
	}
	return nil
}

func (cli *commandLine) addClass(args []string) error {
	cmd := flag.NewFlagSet("addclass", flag.ExitOnError)
	name := cmd.String("name", "", "The class name.")
	section := cmd.String("section", "", "The class section.")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	cls, err := cli.svc.CreateClass(context.Background(), attendance.NewClass{
		Name:    *name,
		Section: *section,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Created class %s\n", cls.ID)
	return nil
}

func (cli *commandLine) editClass(args []string) error {
	cmd := flag.NewFlagSet("editclass", flag.ExitOnError)
	id := cmd.String("id", "", "The class id.")
	name := cmd.String("name", "", "The class name.")
	section := cmd.String("section", "", "The class section.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		cmd.Usage()
		return errHelp
	}

	cls, err := cli.svc.UpdateClass(context.Background(), *id, attendance.UpdateClass{
		Name:    *name,
		Section: *section,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Updated class %s\n", cls.ID)
	return nil
}

func (cli *commandLine) removeClass(args []string) error {
	cmd := flag.NewFlagSet("rmclass", flag.ExitOnError)
	id := cmd.String("id", "", "The class id.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		cmd.Usage()
		return errHelp
	}

	// irreversible: takes the class' students and attendance with it
	if !confirmFunc("Delete class, its students and all its attendance?") {
		return nil
	}
	if err := cli.svc.DeleteClass(context.Background(), *id); err != nil {
		return err
	}
	fmt.Printf("Deleted class %s\n", *id)
	return nil
}
