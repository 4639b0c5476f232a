package client

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/forge-api/internal/handlers/forge/v1alpha1"
)

var (
	materialIDs   []string
	equipmentType string
)

var startForgeCmd = &cobra.Command{
	Use:   "start-forge",
	Short: "Light the forge with up to three materials",
	RunE: func(_ *cobra.Command, _ []string) error {
		c, ctx, cleanup, err := connect()
		if err != nil {
			return err
		}
		defer cleanup()

		resp, err := c.forge.StartForge(ctx, &v1alpha1.StartForgeRequest{
			PlayerID:      playerID,
			MaterialIDs:   materialIDs,
			EquipmentType: strings.ToUpper(equipmentType),
		})
		if err != nil {
			return describe("start forge", err)
		}

		printSession(resp.Session)
		return nil
	},
}

var getForgeCmd = &cobra.Command{
	Use:   "get-forge",
	Short: "Show the active forge session",
	RunE: func(_ *cobra.Command, _ []string) error {
		c, ctx, cleanup, err := connect()
		if err != nil {
			return err
		}
		defer cleanup()

		resp, err := c.forge.GetForge(ctx, &v1alpha1.GetForgeRequest{PlayerID: playerID})
		if err != nil {
			return describe("get forge", err)
		}

		printSession(resp.Session)
		return nil
	},
}

var forgeActionCmd = &cobra.Command{
	Use:   "forge-action [LIGHT|HEAVY|QUENCH|POLISH]",
	Short: "Run one forge action",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		c, ctx, cleanup, err := connect()
		if err != nil {
			return err
		}
		defer cleanup()

		resp, err := c.forge.ExecuteAction(ctx, &v1alpha1.ExecuteActionRequest{
			PlayerID: playerID,
			Action:   strings.ToUpper(args[0]),
		})
		if err != nil {
			return describe("execute action", err)
		}

		printSession(resp.Session)
		if len(resp.MaterialsLost) > 0 {
			fmt.Printf("\nThe piece broke. Materials lost: %s\n", strings.Join(resp.MaterialsLost, ", "))
		}
		return nil
	},
}

var applyDebuffCmd = &cobra.Command{
	Use:   "apply-debuff [HARDENED|DULLED]",
	Short: "Curse the active session until the next strike",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		c, ctx, cleanup, err := connect()
		if err != nil {
			return err
		}
		defer cleanup()

		resp, err := c.forge.ApplyDebuff(ctx, &v1alpha1.ApplyDebuffRequest{
			PlayerID: playerID,
			Debuff:   strings.ToUpper(args[0]),
		})
		if err != nil {
			return describe("apply debuff", err)
		}

		printSession(resp.Session)
		return nil
	},
}

var completeForgeCmd = &cobra.Command{
	Use:   "complete-forge",
	Short: "Seal the session and collect the item",
	RunE: func(_ *cobra.Command, _ []string) error {
		c, ctx, cleanup, err := connect()
		if err != nil {
			return err
		}
		defer cleanup()

		resp, err := c.forge.CompleteForge(ctx, &v1alpha1.CompleteForgeRequest{PlayerID: playerID})
		if err != nil {
			return describe("complete forge", err)
		}

		fmt.Printf("Forged %s (%s), quality score %d\n\n", resp.Equipment.Name, resp.Equipment.Quality, resp.QualityScore)
		return printJSON(resp.Equipment)
	},
}

var abandonForgeCmd = &cobra.Command{
	Use:   "abandon-forge",
	Short: "Drop the active session and keep the materials",
	RunE: func(_ *cobra.Command, _ []string) error {
		c, ctx, cleanup, err := connect()
		if err != nil {
			return err
		}
		defer cleanup()

		resp, err := c.forge.AbandonForge(ctx, &v1alpha1.AbandonForgeRequest{PlayerID: playerID})
		if err != nil {
			return describe("abandon forge", err)
		}

		fmt.Printf("Session %s abandoned\n", resp.SessionID)
		return nil
	},
}

func init() {
	startForgeCmd.Flags().StringSliceVar(&materialIDs, "materials", nil, "Material instance IDs (1-3)")
	startForgeCmd.Flags().StringVar(&equipmentType, "type", "WEAPON", "Equipment type: WEAPON or ARMOR")
	_ = startForgeCmd.MarkFlagRequired("materials") // nolint:errcheck // safe to ignore in init
}

func printSession(view *v1alpha1.ForgeSession) {
	if view == nil || view.State == nil {
		fmt.Println("No session")
		return
	}
	s := view.State

	fmt.Printf("Session %s (%s) %s\n", view.SessionID, view.EquipmentType, s.Status)
	fmt.Printf("  Durability:  %d/%d\n", s.CurrentDurability, s.MaxDurability)
	fmt.Printf("  Progress:    %d%%\n", s.Progress)
	fmt.Printf("  Temperature: %d (%s)\n", s.Temperature, view.Zone)
	fmt.Printf("  Focus:       %d/%d\n", s.Focus, s.MaxFocus)
	fmt.Printf("  Score:       %d (x%.2f)\n", s.QualityScore, s.ScoreMultiplier)
	if s.ActiveDebuff != "" {
		fmt.Printf("  Debuff:      %s\n", s.ActiveDebuff)
	}
	if view.LightCost > 0 {
		fmt.Printf("  Costs:       light %d, heavy %d\n", view.LightCost, view.HeavyCost)
	}
	if view.CanComplete {
		fmt.Println("  Ready to complete")
	}
	if len(s.Logs) > 0 {
		fmt.Printf("  Last:        %s\n", s.Logs[0])
	}
}
