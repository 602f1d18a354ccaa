package main

import (
	"context"
	"flag"
	"fmt"

	"go.uber.org/zap"

	"github.com/wekeepgrowing/item-service/internal/infrastructure/wttr"
	"github.com/wekeepgrowing/item-service/pkg/logger"
)

func main() {
	city := flag.String("city", "London", "city to fetch the weather for")
	flag.Parse()

	log := logger.DefaultZapLogger()
	defer log.Sync()

	client := wttr.NewClient(log)

	cond, err := client.Current(context.Background(), *city)
	if err != nil {
		log.Fatal("failed to fetch weather",
			zap.String("city", *city),
			zap.Error(err))
	}

	fmt.Printf("Weather in %s:\n", *city)
	fmt.Printf("  Temperature: %s°C\n", cond.TempC)
	fmt.Printf("  Feels like: %s°C\n", cond.FeelsLikeC)
	fmt.Printf("  Humidity: %s%%\n", cond.Humidity)
	fmt.Printf("  Condition: %s\n", cond.Text())
}
