package dataset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const schemeAFile = `Статистика по кампании № 4535384, сформирована 01.07.2024
Дата;ID заказа;Номер заказа;Ozon ID;Ozon ID рекламируемого товара;Артикул;Наименование;Количество;Цена продажи;Выручка (руб.);Ставка, %;Ставка, руб.;Расход (руб., с НДС)
15.06.2024;abc-1;1001;oz-1;oz-sku-1;art-1;Blue kettle;2;1 250,50;2 501,00;5,5;12,00;34,70
16.06.2024;abc-2;1002;oz-2;oz-sku-2;art-2;Red kettle;1;999,90;999,90;4,0;8,00;11,20
Всего;;;;;;;3;;3 500,90;;;45,90
`

const schemeBFile = `Статистика по кампании № 7777001, сформирована 01.07.2024
День;Тип страницы;Условие показа;Тип условия;Платформа;Показы;Клики;CTR (%);Средняя ставка за 1000 показов (руб.);Расход, руб.;Название товара;Заказы;Цена товара (руб.);Стоимость, руб.
17.06.2024;main;category;phrase;Android;1 500;30;2,00;45,00;67,50;Green kettle;3;500,00;1 500,00
Всего;;;;;31 500;30;;;67,50;;3;;1 500,00
`

func writeStatisticsFile(t *testing.T, runDir, accountDir, name, content string) {
	t.Helper()
	dir := filepath.Join(runDir, accountDir, "statistics")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestBuildDatasetMergesBothSchemes(t *testing.T) {
	runDir := t.TempDir()
	writeStatisticsFile(t, runDir, "10-client-a", "campaigns_0_0.csv", schemeAFile)
	writeStatisticsFile(t, runDir, "10-client-a", "campaigns_0_1.csv", schemeBFile)

	rows, err := BuildDataset(runDir)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	byCampaign := map[string]int{}
	for _, row := range rows {
		byCampaign[row.Actionnum]++
	}
	assert.Equal(t, 2, byCampaign["4535384"])
	assert.Equal(t, 1, byCampaign["7777001"])

	// Scheme A row: order identity columns populated, traffic ones absent.
	var found bool
	for _, row := range rows {
		if row.OrderID == nil || *row.OrderID != "abc-1" {
			continue
		}
		found = true
		assert.Equal(t, "10", row.AccountID)
		assert.Equal(t, "client-a", row.APIID)
		assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), row.Date)
		require.NotNil(t, row.Name)
		assert.Equal(t, "Blue kettle", *row.Name)
		require.NotNil(t, row.Orders)
		assert.Equal(t, 2.0, *row.Orders)
		require.NotNil(t, row.Price)
		assert.Equal(t, 1250.50, *row.Price)
		require.NotNil(t, row.Revenue)
		assert.Equal(t, 2501.00, *row.Revenue)
		require.NotNil(t, row.Expense)
		assert.Equal(t, 34.70, *row.Expense)
		require.NotNil(t, row.SearchPricePct)
		assert.Equal(t, 5.5, *row.SearchPricePct)
		assert.Nil(t, row.Views)
		assert.Nil(t, row.Platform)
	}
	assert.True(t, found, "scheme A row missing from the dataset")

	// Scheme B row: traffic columns populated through the merged names.
	for _, row := range rows {
		if row.Actionnum != "7777001" {
			continue
		}
		assert.Equal(t, time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC), row.Date)
		require.NotNil(t, row.Platform)
		assert.Equal(t, "Android", *row.Platform)
		require.NotNil(t, row.Views)
		assert.Equal(t, 1500.0, *row.Views)
		require.NotNil(t, row.Name)
		assert.Equal(t, "Green kettle", *row.Name)
		require.NotNil(t, row.Orders)
		assert.Equal(t, 3.0, *row.Orders)
		require.NotNil(t, row.Price)
		assert.Equal(t, 500.0, *row.Price)
		require.NotNil(t, row.Revenue)
		assert.Equal(t, 1500.0, *row.Revenue)
		require.NotNil(t, row.Expense)
		assert.Equal(t, 67.50, *row.Expense)
		assert.Nil(t, row.OrderID)
	}
}

func TestBuildDatasetSkipsMalformedAccountDirs(t *testing.T) {
	runDir := t.TempDir()
	writeStatisticsFile(t, runDir, "10-client-a", "ok.csv", schemeAFile)
	writeStatisticsFile(t, runDir, "notanaccount", "bad.csv", schemeAFile)

	rows, err := BuildDataset(runDir)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestBuildDatasetSkipsUnparsableFiles(t *testing.T) {
	runDir := t.TempDir()
	writeStatisticsFile(t, runDir, "10-client-a", "ok.csv", schemeAFile)
	writeStatisticsFile(t, runDir, "10-client-a", "tiny.csv", "just one line\n")

	rows, err := BuildDataset(runDir)
	require.NoError(t, err)
	assert.Len(t, rows, 2, "a short file contributes nothing and breaks nothing")
}

func TestBuildDatasetDropsRowsWithUncoercibleValues(t *testing.T) {
	broken := `Статистика по кампании № 123, сформирована 01.07.2024
Дата;ID заказа;Номер заказа;Ozon ID;Ozon ID рекламируемого товара;Артикул;Наименование;Количество;Цена продажи;Выручка (руб.);Расход (руб., с НДС)
15.06.2024;abc-1;1001;oz-1;oz-sku-1;art-1;Kettle;not-a-number;10,00;20,00;5,00
16.06.2024;abc-2;1002;oz-2;oz-sku-2;art-2;Kettle;1;10,00;10,00;5,00
Всего;;;;;;;1;;30,00;
`
	runDir := t.TempDir()
	writeStatisticsFile(t, runDir, "10-client-a", "broken.csv", broken)

	rows, err := BuildDataset(runDir)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "abc-2", *rows[0].OrderID)
}

func TestCampaignFromTrailer(t *testing.T) {
	tests := []struct {
		name    string
		trailer []string
		want    string
	}{
		{
			name:    "id before the comma",
			trailer: []string{"Статистика по кампании № 4535384, сформирована 01.07.2024"},
			want:    "4535384",
		},
		{
			name:    "multi field trailer uses the last field",
			trailer: []string{"something", "Отчёт № 99"},
			want:    "99",
		},
		{
			name:    "empty trailer",
			trailer: nil,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, campaignFromTrailer(tt.trailer))
		})
	}
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1 234,56", 1234.56},
		{"0,5", 0.5},
		{"42", 42},
	}

	for _, tt := range tests {
		got, err := parseDecimal(tt.in)
		require.NoError(t, err, tt.in)
		require.NotNil(t, got)
		assert.Equal(t, tt.want, *got)
	}

	_, err := parseDecimal("abc")
	assert.Error(t, err)
}
