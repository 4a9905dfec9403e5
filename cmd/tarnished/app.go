package main

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/cory-johannsen/tarnished/internal/frontend/console"
	"github.com/cory-johannsen/tarnished/internal/game/campaign"
	"github.com/cory-johannsen/tarnished/internal/game/character"
	"github.com/cory-johannsen/tarnished/internal/game/inventory"
)

// App holds everything a play session needs.
type App struct {
	Logger   *zap.Logger
	Term     *console.Term
	Classes  []*character.Class
	Items    *inventory.Catalog
	Campaign *campaign.Campaign
}

// NewApp assembles an App.
func NewApp(logger *zap.Logger, term *console.Term, classes []*character.Class, items *inventory.Catalog, c *campaign.Campaign) *App {
	return &App{Logger: logger, Term: term, Classes: classes, Items: items, Campaign: c}
}

// Play sets up the party and runs the campaign. Quitting from the class menu
// and losing are both normal endings.
func (a *App) Play(ctx context.Context) error {
	_ = a.Term.WriteLine(a.Term.Palette.Colorize(console.Bold+console.BrightYellow, "\nT A R N I S H E D\n"))
	party, err := console.SetupParty(ctx, a.Term, a.Classes, a.Items)
	if errors.Is(err, console.ErrQuit) {
		a.Logger.Info("player quit during setup")
		return nil
	}
	if err != nil {
		return err
	}
	out, err := a.Campaign.Run(ctx, party)
	if err != nil {
		return err
	}
	a.Logger.Info("journey over",
		zap.Bool("completed", out.Completed),
		zap.String("final_stage", string(out.FinalStage)),
		zap.Int("encounters", len(out.Results)),
	)
	return nil
}
