// Command hridayavayu is the terminal front-end for the intake and
// dashboard flow. Every navigation decision lives in internal/flow; this
// binary only renders the active screen and forwards the user's input.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"hridayavayu/config"
	"hridayavayu/internal/client"
	"hridayavayu/internal/flow"
	"hridayavayu/internal/models"
	"hridayavayu/internal/reminder"
	"hridayavayu/internal/session"
)

type cli struct {
	controller *flow.Controller
	backend    *client.Backend
	weather    *client.Weather
	inhaler    *client.Inhaler
	in         *bufio.Scanner
}

func main() {
	cfg, err := config.InitConfig()
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	backend := client.NewBackend(cfg.BackendBaseURL)
	sessions := session.NewFileStore(cfg.SessionFilePath)

	app := &cli{
		controller: flow.NewController(sessions, backend),
		backend:    backend,
		weather:    client.NewWeather(cfg.WeatherAPIURL, cfg.WeatherAPIKey),
		inhaler:    client.NewInhaler(cfg.InhalerAPIURL),
		in:         bufio.NewScanner(os.Stdin),
	}

	if err := app.run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

func (a *cli) run() error {
	a.splash()

	for {
		var err error
		switch a.controller.State() {
		case flow.StateSignUp:
			err = a.signUp()
		case flow.StateProfile:
			err = a.profile()
		case flow.StateQuiz:
			err = a.quiz()
		case flow.StateDashboard:
			err = a.dashboard()
		case flow.StateReminder:
			err = a.reminderScreen()
		default:
			return fmt.Errorf("unexpected state %q", a.controller.State())
		}
		if err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			return err
		}
	}
}

var errQuit = errors.New("quit")

func (a *cli) splash() {
	fmt.Println("HridayaVayu")
	fmt.Println("WHERE HEART MEETS BREATH.")

	done, stop := a.controller.EnterSplash()
	defer stop()
	<-done
}

func (a *cli) signUp() error {
	fmt.Println("\n== Sign Up ==")
	fmt.Print("Press Enter to sign up: ")
	if !a.in.Scan() {
		return errQuit
	}
	return a.controller.ConfirmSignUp()
}

func (a *cli) profile() error {
	fmt.Println("\n== Profile Management ==")
	fmt.Println("Help us to give you more accurate results.")

	request := &models.SaveProfileRequest{}
	request.Name = a.prompt("Name")
	request.Age, _ = strconv.Atoi(a.prompt("Age"))
	request.Gender = a.prompt("Gender (Male/Female/Other)")
	request.Mobile = a.prompt("Mobile")
	request.MedicalHistory = a.prompt("Previous medical history (if any)")

	for {
		name := a.prompt("Emergency contact name (empty to finish)")
		if name == "" {
			break
		}
		phone := a.prompt("Emergency contact phone")
		request.EmergencyContacts = append(request.EmergencyContacts,
			models.EmergencyContactRequest{Name: name, Phone: phone})
	}

	userID, err := a.controller.SubmitProfile(context.Background(), request)
	if err != nil {
		fmt.Println("Failed to save profile:", err)
		return nil // stay on the profile screen, user retries
	}

	fmt.Printf("Profile saved successfully! Your User ID: %s\n", userID)
	return nil
}

func (a *cli) quiz() error {
	quiz := a.controller.Quiz()
	question := quiz.Current()

	fmt.Printf("\n== Question %d ==\n%s\n", quiz.Index()+1, question.Text)
	for i, option := range question.Options {
		fmt.Printf("  %d) %s\n", i+1, option)
	}

	action := "Next"
	if quiz.AtLast() {
		action = "Finish"
	}
	fmt.Printf("Pick an option, or press Enter for %s: ", action)

	if !a.in.Scan() {
		return errQuit
	}
	input := strings.TrimSpace(a.in.Text())

	if input != "" {
		choice, err := strconv.Atoi(input)
		if err != nil || choice < 1 || choice > len(question.Options) {
			fmt.Println("Not an option.")
			return nil
		}
		if err := a.controller.SelectOption(question.Options[choice-1]); err != nil {
			fmt.Println(err)
		}
		return nil
	}

	finished, err := a.controller.AdvanceQuiz(context.Background())
	switch {
	case errors.Is(err, flow.ErrNoSession):
		fmt.Println("User ID not found. Please complete profile first.")
	case err != nil:
		fmt.Println("Error submitting quiz:", err)
	case finished:
		fmt.Println("Quiz submitted.")
	}
	return nil
}

func (a *cli) dashboard() error {
	fmt.Println("\n== Dashboard ==")

	ctx := context.Background()
	if report, err := a.weather.Current(ctx); err == nil {
		fmt.Println("My Location:", report.Summary())
	} else {
		fmt.Println("Weather unavailable")
	}
	if status, err := a.inhaler.Status(ctx); err == nil {
		connectivity := "Device Disconnected"
		if status.Connected {
			connectivity = "Device Connected"
		}
		fmt.Printf("My Inhaler: %d left of 200 puffs, %d today (last %s) — %s\n",
			status.PuffsLeft, status.PuffsToday, status.LastPuffTime, connectivity)
	} else {
		fmt.Println("Inhaler status unavailable")
	}

	fmt.Print("[p]redict with AI, [r]eminder, [e]dit profile, [q]uit: ")
	if !a.in.Scan() {
		return errQuit
	}

	switch strings.TrimSpace(strings.ToLower(a.in.Text())) {
	case "p":
		alerts, err := a.controller.Predict(ctx)
		if err != nil {
			fmt.Println("Failed to invoke AI model:", err)
			return nil
		}
		a.showAlerts(alerts)
	case "r":
		return a.controller.OpenReminder()
	case "e":
		return a.controller.OpenProfile()
	case "q":
		return errQuit
	}
	return nil
}

func (a *cli) showAlerts(alerts []models.Alert) {
	fmt.Println("\n-- AI Alerts --")
	if len(alerts) == 0 {
		fmt.Println("No alerts available")
	}
	for _, alert := range alerts {
		fmt.Printf("%s  %s\n", alert.Timestamp.Local().Format("2006-01-02 15:04"), alert.Message)
	}
	a.controller.DismissAlerts()
}

func (a *cli) reminderScreen() error {
	fmt.Println("\n== Reminder ==")

	schedule := reminder.NewSchedule()
	for _, preset := range reminder.DefaultTimes {
		fmt.Printf("  [ ] %s\n", preset)
	}

	for {
		input := a.prompt("Toggle a preset, add a custom HH:MM, or 'done'")
		if input == "done" {
			break
		}
		if strings.Contains(input, ":") && !strings.Contains(input, " ") {
			if err := schedule.Add(input); err != nil {
				fmt.Println(err)
			}
			continue
		}
		schedule.Toggle(input)
	}

	remindMe := a.prompt("Remind me? (y/n)") == "y"
	if err := a.controller.SubmitReminder(context.Background(), remindMe, schedule.Times()); err != nil {
		fmt.Println("Error setting reminder:", err)
	} else {
		fmt.Println("Reminder set successfully!")
	}

	return a.controller.CloseReminder()
}

func (a *cli) prompt(label string) string {
	fmt.Printf("%s: ", label)
	if !a.in.Scan() {
		return ""
	}
	return strings.TrimSpace(a.in.Text())
}
