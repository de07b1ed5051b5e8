// Package main is a terminal front end for the Userboard API.
// It shows live service health, lists users, and creates users from
// "email [name]" lines read on stdin.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/userboard/userboard/internal/client"
)

func main() {
	baseURL := flag.String("url", envOrDefault("API_BASE_URL", "http://localhost:3001"), "API base URL")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := client.New(*baseURL)

	poller := client.NewHealthPoller(c, client.DefaultPollInterval, func(s client.Status) {
		fmt.Printf("[health] %s\n", s)
	})
	go poller.Run(ctx)

	if message, err := c.Message(ctx); err == nil {
		fmt.Println(message)
	} else {
		fmt.Fprintf(os.Stderr, "failed to fetch message: %v\n", err)
	}

	list := client.NewUserListView()
	refresh(ctx, c, list)
	render(list)

	fmt.Println(`Enter "email [name]" to create a user, or Ctrl-D to quit.`)

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	var form client.SubmitView
	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			submit(ctx, c, &form, list, line)
		}
	}
}

// submit creates a user from an "email [name]" line and refreshes the list.
func submit(ctx context.Context, c *client.Client, form *client.SubmitView, list *client.UserListView, line string) {
	email, name, _ := strings.Cut(strings.TrimSpace(line), " ")
	if email == "" {
		return
	}

	if !form.Begin() {
		return
	}

	user, err := c.CreateUser(ctx, email, name)
	if err != nil {
		message := "Failed to create user"
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			message = apiErr.Message
		}
		form.Fail(message)
		fmt.Printf("error: %s\n", form.Err())
		return
	}

	form.Succeed(time.Now())
	fmt.Printf("created %s\n", user.Email)

	refresh(ctx, c, list)
	render(list)
}

// refresh reloads the user list view from the API.
func refresh(ctx context.Context, c *client.Client, list *client.UserListView) {
	list.BeginLoad()

	users, err := c.ListUsers(ctx)
	if err != nil {
		message := "Failed to fetch users"
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			message = apiErr.Message
		}
		list.Failed(message)
		return
	}

	list.Loaded(users)
}

func render(list *client.UserListView) {
	switch {
	case list.Loading:
		fmt.Println("loading users...")
	case list.Err != "":
		fmt.Printf("error: %s\n", list.Err)
	case len(list.Users) == 0:
		fmt.Println("no users yet")
	default:
		fmt.Printf("%d user(s):\n", len(list.Users))
		for _, u := range list.Users {
			name := "-"
			if u.Name != nil {
				name = *u.Name
			}
			fmt.Printf("  %s  %s  (%s)\n", u.Email, name, u.ID)
		}
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
