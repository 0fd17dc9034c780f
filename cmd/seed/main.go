// Seeds the food catalog with a default set of items. Runs only against an
// empty catalog, so it is safe to invoke repeatedly.
package main

import (
	"log"

	"github.com/antoniofmoraes/nutri-plan/config"
	"github.com/antoniofmoraes/nutri-plan/logger"
	"github.com/antoniofmoraes/nutri-plan/models"
)

var defaultFoods = []models.Food{
	{Name: "Frango Grelhado", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, Portion: "100g"},
	{Name: "Arroz Branco", Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3, Portion: "100g"},
	{Name: "Feijão Preto", Calories: 132, Protein: 8.9, Carbs: 23.7, Fat: 0.5, Portion: "100g"},
	{Name: "Ovo Cozido", Calories: 155, Protein: 13, Carbs: 1.1, Fat: 11, Portion: "100g"},
	{Name: "Banana", Calories: 89, Protein: 1.1, Carbs: 23, Fat: 0.3, Portion: "100g"},
	{Name: "Aveia", Calories: 389, Protein: 16.9, Carbs: 66, Fat: 6.9, Portion: "100g"},
	{Name: "Batata Doce", Calories: 86, Protein: 1.6, Carbs: 20, Fat: 0.1, Portion: "100g"},
	{Name: "Peito de Peru", Calories: 104, Protein: 17.1, Carbs: 4.2, Fat: 1.7, Portion: "100g"},
	{Name: "Iogurte Natural", Calories: 59, Protein: 3.5, Carbs: 4.7, Fat: 3.3, Portion: "100g"},
	{Name: "Whey Protein", Calories: 120, Protein: 24, Carbs: 3, Fat: 1, Portion: "30g"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	lg, err := logger.New(cfg.Mode)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer lg.Sync()

	db, err := config.InitDB(cfg)
	if err != nil {
		lg.Fatal("init database", "error", err)
	}

	var count int64
	if err := db.Model(&models.Food{}).Count(&count).Error; err != nil {
		lg.Fatal("count foods", "error", err)
	}
	if count > 0 {
		lg.Info("foods already present, skipping seed", "count", count)
		return
	}

	if err := db.Create(&defaultFoods).Error; err != nil {
		lg.Fatal("seed foods", "error", err)
	}
	lg.Info("seeded default foods", "count", len(defaultFoods))
}
