package command

import (
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/jrsteele09/wellbe/nutrition"
)

func FoodCommand() *cli.Command {
	return &cli.Command{
		Name:    "food",
		Aliases: []string{"nutrition"},
		Usage:   "Search, scan and log food",
		Subcommands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Search foods by name or brand",
				ArgsUsage: "QUERY",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Usage: "Maximum results (0 uses the default)"},
					&cli.IntFlag{Name: "offset", Usage: "Results to skip"},
				},
				Action: foodSearch,
			},
			{
				Name:      "details",
				Usage:     "Show a food item",
				ArgsUsage: "FOOD_ID",
				Action:    foodDetails,
			},
			{
				Name:      "barcode",
				Usage:     "Look up a barcode",
				ArgsUsage: "BARCODE",
				Action:    foodBarcode,
			},
			{
				Name:      "analyze",
				Usage:     "Recognise foods in a photo",
				ArgsUsage: "IMAGE_FILE",
				Action:    foodAnalyze,
			},
			{
				Name:  "log",
				Usage: "Log a food item to a meal",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "food", Aliases: []string{"f"}, Usage: "Food id", Required: true},
					&cli.Float64Flag{Name: "quantity", Aliases: []string{"q"}, Usage: "Servings", Value: 1},
					&cli.StringFlag{Name: "meal", Aliases: []string{"m"}, Usage: "breakfast, lunch, dinner or snack", Required: true},
					&cli.TimestampFlag{Name: "date", Layout: "2006-01-02", Usage: "Day to log against (YYYY-MM-DD)"},
				},
				Action: foodLog,
			},
			{
				Name:      "daily",
				Usage:     "Show totals and meals for a day",
				ArgsUsage: "[YYYY-MM-DD]",
				Action:    foodDaily,
			},
		},
	}
}

func foodSearch(c *cli.Context) error {
	return emit(c, fromContext(c).Nutrition.SearchFood(c.Context, nutrition.FoodSearchRequest{
		Query:  strings.Join(c.Args().Slice(), " "),
		Limit:  c.Int("limit"),
		Offset: c.Int("offset"),
	}))
}

func foodDetails(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: wellbe food details FOOD_ID", 2)
	}
	return emit(c, fromContext(c).Nutrition.FoodDetails(c.Context, c.Args().First()))
}

func foodBarcode(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: wellbe food barcode BARCODE", 2)
	}
	return emit(c, fromContext(c).Nutrition.ScanBarcode(c.Context, c.Args().First()))
}

func foodAnalyze(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: wellbe food analyze IMAGE_FILE", 2)
	}
	f, err := os.Open(c.Args().First())
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	defer f.Close()

	return emit(c, fromContext(c).Nutrition.AnalyzeImage(c.Context, nutrition.AnalyzeImageRequest{
		Image: f,
		Progress: func(percent int) {
			log.Debug().Int("percent", percent).Msg("Upload progress")
		},
	}))
}

func foodLog(c *cli.Context) error {
	req := nutrition.LogFoodRequest{
		FoodID:   c.String("food"),
		Quantity: c.Float64("quantity"),
		MealType: nutrition.MealType(strings.ToLower(c.String("meal"))),
		Date:     c.Timestamp("date"),
	}
	return emit(c, fromContext(c).Nutrition.LogFood(c.Context, req))
}

func foodDaily(c *cli.Context) error {
	return emit(c, fromContext(c).Nutrition.DailyNutrition(c.Context, c.Args().First()))
}
