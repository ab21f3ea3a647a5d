package bookkeeping

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Split record serialization.
//
// The stable contract is a semicolon-delimited record:
//
//	uid;value_num;value_denom;value_currency;qty_num;qty_denom;qty_currency;transaction_uid;account_uid;type[;memo]
//
// A legacy 6-field form, amount;currency;transaction_uid;account_uid;type[;memo],
// predates the value/quantity distinction and must keep parsing indefinitely;
// there is no sunset for it. Record always emits the current form.
//
// The memo is always the last field and may itself contain the delimiter, so
// parsers rejoin every trailing field into it rather than rejecting on arity.

// Record serializes the split into the current delimited form.
func (s *Split) Record() (string, error) {
	vn, vd, err := s.Value.Fraction()
	if err != nil {
		return "", err
	}
	qn, qd, err := s.Quantity.Fraction()
	if err != nil {
		return "", err
	}
	fields := []string{
		s.UID,
		strconv.FormatInt(vn, 10),
		strconv.FormatInt(vd, 10),
		s.Value.CurrencyCode(),
		strconv.FormatInt(qn, 10),
		strconv.FormatInt(qd, 10),
		s.Quantity.CurrencyCode(),
		s.TransactionUID,
		s.AccountUID,
		string(s.Type),
	}
	if s.Memo != "" {
		fields = append(fields, s.Memo)
	}
	return strings.Join(fields, ";"), nil
}

// ParseSplit parses either the current or the legacy split record form,
// resolving currency codes through the given lookup. It fails with
// ErrMalformedRecord on wrong arity or invalid numbers.
func ParseSplit(record string, commodities CommodityLookup) (*Split, error) {
	fields := strings.Split(record, ";")
	switch {
	case len(fields) >= 10:
		return parseSplitRecord(fields, commodities)
	case len(fields) >= 5:
		return parseLegacySplitRecord(fields, commodities)
	default:
		return nil, fmt.Errorf("%w: %d fields in %q", ErrMalformedRecord, len(fields), record)
	}
}

func parseSplitRecord(fields []string, commodities CommodityLookup) (*Split, error) {
	value, err := moneyFromFields(fields[1], fields[2], fields[3], commodities)
	if err != nil {
		return nil, err
	}
	quantity, err := moneyFromFields(fields[4], fields[5], fields[6], commodities)
	if err != nil {
		return nil, err
	}
	splitType, err := ParseTransactionType(fields[9])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	// magnitudes are stored unsigned, the side lives in the type field alone.
	s := &Split{
		EntityMeta:     EntityMeta{UID: fields[0]},
		Value:          value.Abs(),
		Quantity:       quantity.Abs(),
		TransactionUID: fields[7],
		AccountUID:     fields[8],
		Type:           splitType,
	}
	if len(fields) > 10 {
		s.Memo = strings.Join(fields[10:], ";")
	}
	return s, nil
}

func parseLegacySplitRecord(fields []string, commodities CommodityLookup) (*Split, error) {
	commodity, err := commodities.Commodity(fields[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	amount, err := decimal.NewFromString(fields[0])
	if err != nil {
		return nil, fmt.Errorf("%w: amount %q: %v", ErrMalformedRecord, fields[0], err)
	}
	splitType, err := ParseTransactionType(fields[4])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	// magnitudes are stored unsigned; legacy writers put the sign on the
	// amount, the explicit type field already carries the side.
	m := M(amount, commodity).Abs()
	// the legacy form has no quantity: it predates multi-currency splits.
	s := &Split{
		EntityMeta:     NewEntityMeta(),
		Value:          m,
		Quantity:       m,
		TransactionUID: fields[2],
		AccountUID:     fields[3],
		Type:           splitType,
	}
	if len(fields) > 5 {
		s.Memo = strings.Join(fields[5:], ";")
	}
	return s, nil
}

func moneyFromFields(num, den, code string, commodities CommodityLookup) (Money, error) {
	commodity, err := commodities.Commodity(code)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	n, err := strconv.ParseInt(num, 10, 64)
	if err != nil {
		return Money{}, fmt.Errorf("%w: numerator %q", ErrMalformedRecord, num)
	}
	d, err := strconv.ParseInt(den, 10, 64)
	if err != nil {
		return Money{}, fmt.Errorf("%w: denominator %q", ErrMalformedRecord, den)
	}
	amount, err := fractionDecimal(n, d)
	if err != nil {
		return Money{}, err
	}
	return M(amount, commodity), nil
}

// fractionDecimal turns num/den into an exact decimal when den is a power of
// ten, and a 12-digit rounded quotient otherwise.
func fractionDecimal(num, den int64) (decimal.Decimal, error) {
	if den <= 0 {
		return decimal.Zero, fmt.Errorf("%w: denominator %d", ErrMalformedRecord, den)
	}
	k, d := 0, den
	for d%10 == 0 {
		d /= 10
		k++
	}
	if d == 1 {
		return decimal.New(num, int32(-k)), nil
	}
	return decimal.NewFromInt(num).DivRound(decimal.NewFromInt(den), 12), nil
}

// Book persistence.
//
// A book is persisted as JSONL: one object per line with a "kind"
// discriminator, accounts first (parents before children, which the
// full-name ordering guarantees), then transactions, schedules and budgets.
// Keys are emitted in a stable order so the file stays git-friendly.

const (
	kindAccount     = "account"
	kindTransaction = "transaction"
	kindSchedule    = "schedule"
	kindBudget      = "budget"
)

// EncodeBook writes the whole book to w in JSONL form.
func EncodeBook(w io.Writer, b *Book) error {
	for a := range b.Accounts() {
		if err := encodeLine(w, accountWriter(a)); err != nil {
			return err
		}
	}
	for _, tx := range b.Transactions() {
		jw, err := transactionWriter(tx)
		if err != nil {
			return err
		}
		if err := encodeLine(w, jw); err != nil {
			return err
		}
	}
	for _, sa := range b.Schedules() {
		if err := encodeLine(w, scheduleWriter(sa)); err != nil {
			return err
		}
	}
	for _, budget := range b.Budgets() {
		if err := encodeLine(w, budgetWriter(budget)); err != nil {
			return err
		}
	}
	return nil
}

func encodeLine(w io.Writer, jw *jsonObjectWriter) error {
	data, err := jw.MarshalJSON()
	if err != nil {
		return err
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write book line: %w", err)
	}
	return nil
}

func accountWriter(a *Account) *jsonObjectWriter {
	var w jsonObjectWriter
	w.Append("kind", kindAccount)
	w.Append("uid", a.UID)
	w.Append("name", a.Name)
	w.Append("fullName", a.FullName)
	w.Optional("description", a.Description)
	w.Append("commodity", a.Commodity.Mnemonic)
	if a.Commodity.Namespace != NamespaceCurrency {
		w.Optional("namespace", a.Commodity.Namespace)
		w.Append("fraction", a.Commodity.FractionDigits)
	}
	w.Append("type", a.Type)
	w.Optional("parent", a.ParentUID)
	w.Optional("transferAccount", a.DefaultTransferAccountUID)
	w.Optional("placeholder", a.Placeholder)
	w.Optional("hidden", a.Hidden)
	w.Optional("favorite", a.Favorite)
	w.Optional("color", a.Color)
	return &w
}

func transactionWriter(t *Transaction) (*jsonObjectWriter, error) {
	var w jsonObjectWriter
	w.Append("kind", kindTransaction)
	w.Append("uid", t.UID)
	w.Append("description", t.Description)
	w.Optional("notes", t.Notes)
	w.Append("timestamp", t.Timestamp.UTC().Format(time.RFC3339))
	w.Append("currency", t.Commodity.Mnemonic)
	w.Optional("exported", t.Exported)
	w.Optional("period", t.RecurrencePeriod)
	records := make([]string, 0, len(t.Splits()))
	for _, s := range t.Splits() {
		rec, err := s.Record()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	w.Append("splits", records)
	return &w, nil
}

func scheduleWriter(a *ScheduledAction) *jsonObjectWriter {
	var w jsonObjectWriter
	w.Append("kind", kindSchedule)
	w.Append("uid", a.UID)
	w.Append("action", a.ActionType)
	w.Append("template", a.TemplateUID)
	w.Append("period", a.Recurrence.Period.String())
	w.Append("multiplier", a.Recurrence.Multiplier)
	w.Append("start", a.StartTime.UTC().Format(time.RFC3339))
	if !a.EndTime.IsZero() {
		w.Append("end", a.EndTime.UTC().Format(time.RFC3339))
	}
	if !a.LastRunTime.IsZero() {
		w.Append("lastRun", a.LastRunTime.UTC().Format(time.RFC3339))
	}
	w.Optional("total", a.TotalFrequency)
	w.Optional("count", a.ExecutionCount)
	w.Append("enabled", a.Enabled)
	w.Optional("tag", a.Tag)
	return &w
}

func budgetWriter(b *Budget) *jsonObjectWriter {
	var w jsonObjectWriter
	w.Append("kind", kindBudget)
	w.Append("uid", b.UID)
	w.Append("name", b.Name)
	w.Append("period", b.Recurrence.Period.String())
	w.Append("multiplier", b.Recurrence.Multiplier)
	w.Optional("numPeriods", b.NumPeriods)
	type jamount struct {
		Account  string `json:"account"`
		Period   int64  `json:"period"`
		Amount   string `json:"amount"`
		Currency string `json:"currency"`
	}
	amounts := make([]jamount, 0, len(b.Amounts()))
	for _, ba := range b.Amounts() {
		amounts = append(amounts, jamount{
			Account:  ba.AccountUID,
			Period:   ba.PeriodNum,
			Amount:   ba.Amount.PlainString(),
			Currency: ba.Amount.CurrencyCode(),
		})
	}
	w.Append("amounts", amounts)
	return &w
}

// DecodeBook reads a JSONL stream produced by EncodeBook into a fresh Book.
func DecodeBook(r io.Reader, ctx LedgerContext) (*Book, error) {
	book := NewBook(ctx)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var identifier struct {
			Kind string `json:"kind"`
		}
		if err := json.Unmarshal(line, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify kind in line %q: %w", string(line), err)
		}
		var err error
		switch identifier.Kind {
		case kindAccount:
			err = decodeAccount(book, line)
		case kindTransaction:
			err = decodeTransaction(book, line)
		case kindSchedule:
			err = decodeSchedule(book, line)
		case kindBudget:
			err = decodeBudget(book, line)
		default:
			err = fmt.Errorf("unknown line kind %q", identifier.Kind)
		}
		if err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading book: %w", err)
	}
	return book, nil
}

func decodeAccount(book *Book, line []byte) error {
	var temp struct {
		UID             string `json:"uid"`
		Name            string `json:"name"`
		FullName        string `json:"fullName"`
		Description     string `json:"description"`
		CommodityCode   string `json:"commodity"`
		Namespace       string `json:"namespace"`
		Fraction        int    `json:"fraction"`
		Type            string `json:"type"`
		Parent          string `json:"parent"`
		TransferAccount string `json:"transferAccount"`
		Placeholder     bool   `json:"placeholder"`
		Hidden          bool   `json:"hidden"`
		Favorite        bool   `json:"favorite"`
		Color           string `json:"color"`
	}
	if err := json.Unmarshal(line, &temp); err != nil {
		return err
	}
	accountType, err := ParseAccountType(temp.Type)
	if err != nil {
		return err
	}
	commodity, err := FindCommodity(temp.CommodityCode)
	if err != nil {
		if temp.Namespace == "" {
			return err
		}
		// non-ISO commodity declared inline on the account.
		commodity = Commodity{
			Namespace:      temp.Namespace,
			Mnemonic:       temp.CommodityCode,
			FullName:       temp.CommodityCode,
			FractionDigits: temp.Fraction,
		}
	}
	a := &Account{
		EntityMeta:                EntityMeta{UID: temp.UID},
		Name:                      temp.Name,
		FullName:                  temp.FullName,
		Description:               temp.Description,
		Commodity:                 commodity,
		Type:                      accountType,
		ParentUID:                 temp.Parent,
		DefaultTransferAccountUID: temp.TransferAccount,
		Placeholder:               temp.Placeholder,
		Hidden:                    temp.Hidden,
		Favorite:                  temp.Favorite,
		Color:                     temp.Color,
	}
	return book.AddAccount(a)
}

func decodeTransaction(book *Book, line []byte) error {
	var temp struct {
		UID         string   `json:"uid"`
		Description string   `json:"description"`
		Notes       string   `json:"notes"`
		Timestamp   string   `json:"timestamp"`
		Currency    string   `json:"currency"`
		Exported    bool     `json:"exported"`
		Period      int64    `json:"period"`
		Splits      []string `json:"splits"`
	}
	if err := json.Unmarshal(line, &temp); err != nil {
		return err
	}
	when, err := time.Parse(time.RFC3339, temp.Timestamp)
	if err != nil {
		return fmt.Errorf("invalid transaction timestamp %q: %w", temp.Timestamp, err)
	}
	commodity, err := book.Commodity(temp.Currency)
	if err != nil {
		return err
	}
	tx := NewTransaction(when, temp.Description, commodity)
	tx.UID = temp.UID
	tx.Notes = temp.Notes
	tx.Exported = temp.Exported
	tx.RecurrencePeriod = temp.Period
	for _, rec := range temp.Splits {
		s, err := ParseSplit(rec, book)
		if err != nil {
			return err
		}
		tx.AddSplit(s)
	}
	return book.AddTransaction(tx)
}

func decodeSchedule(book *Book, line []byte) error {
	var temp struct {
		UID        string `json:"uid"`
		Action     string `json:"action"`
		Template   string `json:"template"`
		Period     string `json:"period"`
		Multiplier int    `json:"multiplier"`
		Start      string `json:"start"`
		End        string `json:"end"`
		LastRun    string `json:"lastRun"`
		Total      int    `json:"total"`
		Count      int    `json:"count"`
		Enabled    bool   `json:"enabled"`
		Tag        string `json:"tag"`
	}
	if err := json.Unmarshal(line, &temp); err != nil {
		return err
	}
	actionType, err := ParseActionType(temp.Action)
	if err != nil {
		return err
	}
	periodType, err := ParsePeriodType(temp.Period)
	if err != nil {
		return err
	}
	start, err := time.Parse(time.RFC3339, temp.Start)
	if err != nil {
		return fmt.Errorf("invalid schedule start %q: %w", temp.Start, err)
	}
	a := NewScheduledAction(actionType, temp.Template, NewRecurrence(periodType, temp.Multiplier), start)
	a.UID = temp.UID
	a.TotalFrequency = temp.Total
	a.ExecutionCount = temp.Count
	a.Enabled = temp.Enabled
	a.Tag = temp.Tag
	if temp.End != "" {
		if a.EndTime, err = time.Parse(time.RFC3339, temp.End); err != nil {
			return fmt.Errorf("invalid schedule end %q: %w", temp.End, err)
		}
	}
	if temp.LastRun != "" {
		if a.LastRunTime, err = time.Parse(time.RFC3339, temp.LastRun); err != nil {
			return fmt.Errorf("invalid schedule lastRun %q: %w", temp.LastRun, err)
		}
	}
	book.AddSchedule(a)
	return nil
}

func decodeBudget(book *Book, line []byte) error {
	var temp struct {
		UID        string `json:"uid"`
		Name       string `json:"name"`
		Period     string `json:"period"`
		Multiplier int    `json:"multiplier"`
		NumPeriods int64  `json:"numPeriods"`
		Amounts    []struct {
			Account  string `json:"account"`
			Period   int64  `json:"period"`
			Amount   string `json:"amount"`
			Currency string `json:"currency"`
		} `json:"amounts"`
	}
	if err := json.Unmarshal(line, &temp); err != nil {
		return err
	}
	periodType, err := ParsePeriodType(temp.Period)
	if err != nil {
		return err
	}
	budget := NewBudget(temp.Name, NewRecurrence(periodType, temp.Multiplier))
	budget.UID = temp.UID
	budget.NumPeriods = temp.NumPeriods
	for _, ja := range temp.Amounts {
		commodity, err := book.Commodity(ja.Currency)
		if err != nil {
			return err
		}
		amount, err := decimal.NewFromString(ja.Amount)
		if err != nil {
			return fmt.Errorf("%w: budget amount %q: %v", ErrMalformedRecord, ja.Amount, err)
		}
		budget.AddAmount(ja.Account, ja.Period, M(amount, commodity))
	}
	book.AddBudget(budget)
	return nil
}
