// Package chat implements the Arvin conversational support commands.
package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/neuropulse/neuropulse/internal/arvin"
	"github.com/neuropulse/neuropulse/internal/cli"
)

type ChatCmd struct {
	Session   SessionCmd   `cmd:"" default:"1" help:"Start an interactive chat session."`
	Send      SendCmd      `cmd:"" help:"Send a one-shot message."`
	Resources ResourcesCmd `cmd:"" help:"Show mental health resources from the backend."`
	Stats     StatsCmd     `cmd:"" help:"Show session statistics."`
	Clear     ClearCmd     `cmd:"" help:"Clear the server-side conversation history."`
	Health    HealthCmd    `cmd:"" help:"Check that the chat backend is reachable."`
}

func newClient(ctx *cli.Context) (*arvin.Client, error) {
	userID, err := ctx.UserID()
	if err != nil {
		return nil, err
	}
	return arvin.New(ctx.ArvinURL, userID), nil
}

// renderReply prints a reply, switching layout on the backend's crisis flag.
func renderReply(reply arvin.Reply) {
	if reply.IsCrisis {
		fmt.Println(cli.AlertStyle.Render("Arvin flagged this conversation as a crisis."))
		fmt.Println()
		fmt.Println(reply.Message)
		if len(reply.Hotlines) > 0 {
			fmt.Println()
			cli.PrintTitle("Please reach out now")
			for _, h := range reply.Hotlines {
				fmt.Printf("%s (%s): %s\n", h.Name, h.Country, cli.ValueStyle.Render(h.Number))
			}
		}
		return
	}

	fmt.Println(reply.Message)
	if reply.Sentiment != nil {
		fmt.Println(cli.DimStyle.Render(fmt.Sprintf("mood: %s (%.2f)", reply.Sentiment.Mood, reply.Sentiment.Score)))
	}
}

type SessionCmd struct{}

func (c *SessionCmd) Run(ctx *cli.Context) error {
	client, err := newClient(ctx)
	if err != nil {
		return err
	}
	return runSession(client)
}

type SendCmd struct {
	Message []string `arg:"" help:"Message text."`
}

func (c *SendCmd) Run(ctx *cli.Context) error {
	client, err := newClient(ctx)
	if err != nil {
		return err
	}

	message := strings.Join(c.Message, " ")

	reqCtx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	reply, err := client.Chat(reqCtx, message)
	if err != nil {
		// Connection trouble is shown inline, never retried.
		fmt.Println(cli.WarnStyle.Render("Could not reach Arvin: " + err.Error()))
		return nil
	}
	renderReply(reply)
	return nil
}

type ResourcesCmd struct{}

func (c *ResourcesCmd) Run(ctx *cli.Context) error {
	client, err := newClient(ctx)
	if err != nil {
		return err
	}
	reqCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	res, err := client.Resources(reqCtx)
	if err != nil {
		return err
	}

	cli.PrintTitle("Crisis Hotlines")
	for _, h := range res.CrisisHotlines {
		fmt.Printf("%s (%s): %s  [%s]\n", h.Name, h.Country, h.Number, h.Available)
	}
	cli.PrintTitle("Resources")
	for _, r := range res.Resources {
		fmt.Printf("%s - %s\n  %s\n", r.Name, r.Description, cli.DimStyle.Render(r.URL))
	}
	return nil
}

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	client, err := newClient(ctx)
	if err != nil {
		return err
	}
	reqCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	s, err := client.SessionStats(reqCtx)
	if err != nil {
		return err
	}

	active := "no"
	if s.SessionActive {
		active = "yes"
	}
	cli.PrintTitle("Chat Session")
	cli.PrintKV("Your messages", fmt.Sprintf("%d", s.UserMessages))
	cli.PrintKV("Arvin's messages", fmt.Sprintf("%d", s.AssistantMessages))
	cli.PrintKV("Exchanges", fmt.Sprintf("%d", s.TotalExchanges))
	cli.PrintKV("Active", active)
	return nil
}

type ClearCmd struct {
	Yes bool `help:"Skip confirmation." short:"y"`
}

func (c *ClearCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		ok, err := cli.Confirm("Clear your conversation history with Arvin?")
		if err != nil || !ok {
			return err
		}
	}
	client, err := newClient(ctx)
	if err != nil {
		return err
	}
	reqCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := client.ClearSession(reqCtx); err != nil {
		return err
	}
	fmt.Println("Session cleared.")
	return nil
}

type HealthCmd struct{}

func (c *HealthCmd) Run(ctx *cli.Context) error {
	client, err := newClient(ctx)
	if err != nil {
		return err
	}
	reqCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	h, err := client.Health(reqCtx)
	if err != nil {
		fmt.Println(cli.AlertStyle.Render("Chat backend unreachable: " + err.Error()))
		return nil
	}
	fmt.Printf("%s: %s (%s)\n", h.Service, cli.GoodStyle.Render(h.Status), h.Version)
	return nil
}
