package spreadsheet

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// subscriberColumns maps accepted header names to subscriber fields.
var subscriberColumns = map[string]string{
	"contract":        "contract",
	"contract_number": "contract",
	"surname":         "surname",
	"name":            "name",
	"patronymic":      "patronymic",
	"city":            "city",
	"district":        "district",
	"street":          "street",
	"house":           "house",
	"latitude":        "latitude",
	"longitude":       "longitude",
	"address":         "address",
	"yandex_address":  "address",
	"status":          "status",
}

type subscriberImporter struct{}

// NewSubscriberImporter creates an xlsx subscriber importer.
func NewSubscriberImporter() service.SubscriberImporter {
	return &subscriberImporter{}
}

// ParseSubscribers reads the first sheet. The first row is a header naming the
// columns; blank rows are skipped and invalid ones are reported.
func (i *subscriberImporter) ParseSubscribers(r io.Reader) ([]entity.Subscriber, []service.ImportRowError, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open spreadsheet")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, errors.New("spreadsheet has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read rows")
	}
	if len(rows) == 0 {
		return nil, nil, errors.New("spreadsheet is empty")
	}

	columns := make(map[string]int, len(rows[0]))
	for idx, header := range rows[0] {
		if field, ok := subscriberColumns[strings.ToLower(strings.TrimSpace(header))]; ok {
			columns[field] = idx
		}
	}
	for _, required := range []string{"contract", "city", "house"} {
		if _, ok := columns[required]; !ok {
			return nil, nil, errors.Errorf("missing required column %q", required)
		}
	}

	subscribers := make([]entity.Subscriber, 0, len(rows)-1)
	var rejected []service.ImportRowError
	// A repeated contract replaces the earlier row, which is reported.
	seen := make(map[string]int, len(rows)-1)
	sourceRows := make([]int, 0, len(rows)-1)
	for n, row := range rows[1:] {
		rowNumber := n + 2
		if isBlankRow(row) {
			continue
		}

		sub, reason := parseSubscriberRow(row, columns)
		if reason != "" {
			rejected = append(rejected, service.ImportRowError{Row: rowNumber, Reason: reason})

			continue
		}

		if pos, ok := seen[sub.ContractNumber]; ok {
			rejected = append(rejected, service.ImportRowError{
				Row:    sourceRows[pos],
				Reason: fmt.Sprintf("contract %s repeated in row %d", sub.ContractNumber, rowNumber),
			})
			subscribers[pos] = sub
			sourceRows[pos] = rowNumber

			continue
		}
		seen[sub.ContractNumber] = len(subscribers)
		subscribers = append(subscribers, sub)
		sourceRows = append(sourceRows, rowNumber)
	}

	slices.SortStableFunc(rejected, func(a, b service.ImportRowError) int {
		return cmp.Compare(a.Row, b.Row)
	})

	return subscribers, rejected, nil
}

func parseSubscriberRow(row []string, columns map[string]int) (entity.Subscriber, string) {
	get := func(field string) string {
		idx, ok := columns[field]
		if !ok || idx >= len(row) {
			return ""
		}

		return strings.TrimSpace(row[idx])
	}

	sub := entity.Subscriber{
		ContractNumber:  get("contract"),
		Surname:         get("surname"),
		Name:            get("name"),
		Patronymic:      get("patronymic"),
		City:            get("city"),
		District:        get("district"),
		Street:          get("street"),
		House:           get("house"),
		GeocodedAddress: get("address"),
		Status:          entity.SubscriberActive,
	}

	switch {
	case sub.ContractNumber == "":
		return sub, "contract number is empty"
	case sub.City == "":
		return sub, "city is empty"
	case sub.House == "":
		return sub, "house is empty"
	case !sub.HasStreetLevelAddress():
		return sub, "district or street is required"
	}

	if status := get("status"); status != "" {
		sub.Status = entity.SubscriberStatus(strings.ToLower(status))
		if !sub.Status.IsValid() {
			return sub, fmt.Sprintf("unknown status %q", status)
		}
	}

	var err error
	if sub.Latitude, err = parseCoordinate(get("latitude")); err != nil {
		return sub, "invalid latitude"
	}
	if sub.Longitude, err = parseCoordinate(get("longitude")); err != nil {
		return sub, "invalid longitude"
	}

	return sub, ""
}

// parseCoordinate accepts both "52.5" and "52,5".
func parseCoordinate(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}

	return strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}
