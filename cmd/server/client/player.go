package client

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/forge-api/internal/handlers/forge/v1alpha1"
)

var (
	lootType        string
	lootQualities   []int
	lootBossDrop    bool
	lootTargetScore int
)

var createPlayerCmd = &cobra.Command{
	Use:   "create-player",
	Short: "Create a player with the starter kit",
	RunE: func(_ *cobra.Command, _ []string) error {
		c, ctx, cleanup, err := connect()
		if err != nil {
			return err
		}
		defer cleanup()

		resp, err := c.player.CreatePlayer(ctx, &v1alpha1.CreatePlayerRequest{PlayerID: playerID})
		if err != nil {
			return describe("create player", err)
		}

		fmt.Printf("Player %s created with %d gold\n\n", resp.Player.ID, resp.Player.Gold)
		fmt.Printf("Next: forge-api client start-forge --player-id %s --materials <id>,<id> --type WEAPON\n", playerID)
		return printJSON(resp.Player)
	},
}

var getPlayerCmd = &cobra.Command{
	Use:   "get-player",
	Short: "Show a player's gold, materials, talents and inventory",
	RunE: func(_ *cobra.Command, _ []string) error {
		c, ctx, cleanup, err := connect()
		if err != nil {
			return err
		}
		defer cleanup()

		resp, err := c.player.GetPlayer(ctx, &v1alpha1.GetPlayerRequest{PlayerID: playerID})
		if err != nil {
			return describe("get player", err)
		}
		return printJSON(resp.Player)
	},
}

var buyMaterialCmd = &cobra.Command{
	Use:   "buy-material [catalog-id]",
	Short: "Buy a material from the shop",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		c, ctx, cleanup, err := connect()
		if err != nil {
			return err
		}
		defer cleanup()

		resp, err := c.player.BuyMaterial(ctx, &v1alpha1.BuyMaterialRequest{
			PlayerID:   playerID,
			MaterialID: args[0],
		})
		if err != nil {
			return describe("buy material", err)
		}

		fmt.Printf("Bought %s (%s), %d gold left\n", resp.Material.Name, resp.Material.ID, resp.Player.Gold)
		return nil
	},
}

var unlockTalentCmd = &cobra.Command{
	Use:   "unlock-talent [talent-id]",
	Short: "Unlock a talent",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		c, ctx, cleanup, err := connect()
		if err != nil {
			return err
		}
		defer cleanup()

		resp, err := c.player.UnlockTalent(ctx, &v1alpha1.UnlockTalentRequest{
			PlayerID: playerID,
			TalentID: args[0],
		})
		if err != nil {
			return describe("unlock talent", err)
		}

		fmt.Printf("Unlocked %s, %d gold left\n", resp.Talent.Name, resp.Player.Gold)
		return nil
	},
}

var sellEquipmentCmd = &cobra.Command{
	Use:   "sell-equipment [equipment-id]",
	Short: "Sell a forged item",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		c, ctx, cleanup, err := connect()
		if err != nil {
			return err
		}
		defer cleanup()

		resp, err := c.player.SellEquipment(ctx, &v1alpha1.SellEquipmentRequest{
			PlayerID:    playerID,
			EquipmentID: args[0],
		})
		if err != nil {
			return describe("sell equipment", err)
		}

		fmt.Printf("Sold for %d gold, %d gold total\n", resp.GoldEarned, resp.Player.Gold)
		return nil
	},
}

var claimLootCmd = &cobra.Command{
	Use:   "claim-loot",
	Short: "Claim a dungeon drop or a blacksmith reward",
	RunE: func(_ *cobra.Command, _ []string) error {
		c, ctx, cleanup, err := connect()
		if err != nil {
			return err
		}
		defer cleanup()

		resp, err := c.player.ClaimLoot(ctx, &v1alpha1.ClaimLootRequest{
			PlayerID:      playerID,
			EquipmentType: strings.ToUpper(lootType),
			Qualities:     lootQualities,
			BossDrop:      lootBossDrop,
			TargetScore:   lootTargetScore,
		})
		if err != nil {
			return describe("claim loot", err)
		}

		fmt.Printf("Claimed %s (%s), score %d\n", resp.Equipment.Name, resp.Equipment.ID, resp.Equipment.Score)
		return printJSON(resp.Equipment)
	},
}

func init() {
	claimLootCmd.Flags().StringVar(&lootType, "type", "WEAPON", "Equipment type: WEAPON or ARMOR")
	claimLootCmd.Flags().IntSliceVar(&lootQualities, "qualities", []int{1}, "Material qualities of the drop (1-3 values)")
	claimLootCmd.Flags().BoolVar(&lootBossDrop, "boss", false, "Roll as a boss drop")
	claimLootCmd.Flags().IntVar(&lootTargetScore, "target-score", 0, "Roll a blacksmith reward around this score")
}
