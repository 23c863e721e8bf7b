package document

import (
	"fmt"
	"html"
	"strconv"
	"strings"
	"text/template"
	"time"

	"boatcloser/transaction"
)

// Rendered is a generated document ready for display or export.
type Rendered struct {
	Title string
	Body  string
}

var tmplFuncs = template.FuncMap{
	// money formats a decimal-string amount with separators, or yields the
	// placeholder when the field is empty or malformed.
	"money": func(s, placeholder string) string {
		n, ok := parseAmount(s)
		if !ok {
			return placeholder
		}
		return formatAmount(n)
	},
	// balance renders price minus deposit; both inputs must parse.
	"balance": func(price, deposit, placeholder string) string {
		p, ok := parseAmount(price)
		if !ok {
			return placeholder
		}
		d, ok := parseAmount(deposit)
		if !ok {
			return placeholder
		}
		return formatAmount(p - d)
	},
	"words": func(s, placeholder string) string {
		n, ok := parseAmount(s)
		if !ok {
			return placeholder
		}
		return amountInWords(n)
	},
	"wordsUpperDollars": func(s, placeholder string) string {
		n, ok := parseAmount(s)
		if !ok {
			return placeholder
		}
		return strings.ToUpper(amountInWords(n)) + " DOLLARS"
	},
	"fmt": formatAmount,
}

var (
	docTmpls   map[string]*template.Template
	blockTmpls map[transaction.PaymentMethod]*template.Template
)

func init() {
	docTmpls = make(map[string]*template.Template, len(docTemplates))
	for id, src := range docTemplates {
		docTmpls[id] = template.Must(template.New(id).Funcs(tmplFuncs).Parse(src))
	}
	blockTmpls = map[transaction.PaymentMethod]*template.Template{
		transaction.PayWire:   template.Must(template.New("wire").Funcs(tmplFuncs).Parse(wirePaymentBlockTmpl)),
		transaction.PayZelle:  template.Must(template.New("zelle").Funcs(tmplFuncs).Parse(zellePaymentBlockTmpl)),
		transaction.PayCheck:  template.Must(template.New("check").Funcs(tmplFuncs).Parse(checkPaymentBlockTmpl)),
		transaction.PayEscrow: template.Must(template.New("escrow").Funcs(tmplFuncs).Parse(escrowPaymentBlockTmpl)),
	}
}

// docContext is the data a template sees. All derived values are computed
// up front so the templates stay pure substitution.
type docContext struct {
	Today         string
	DocNumber     string
	TransactionID string
	Vessel        transaction.Vessel
	Buyer         transaction.Party
	Seller        transaction.Party
	Terms         transaction.Terms
	Escrow        transaction.Escrow

	Closing   ClosingFigures
	WireFinal int64

	DepositHolder      string
	PaymentMethodLabel string
	PaymentBlock       string
	WireRecipient      string
}

// Engine turns transaction state into rendered documents. The clock is
// injectable so renders are reproducible in tests.
type Engine struct {
	now func() time.Time
}

// NewEngine returns an engine on the wall clock.
func NewEngine() *Engine {
	return NewEngineAt(time.Now)
}

// NewEngineAt returns an engine using the given clock.
func NewEngineAt(now func() time.Time) *Engine {
	return &Engine{now: now}
}

// Render generates the document with the given catalog id from the current
// state. Ids outside the catalog yield a stub document rather than an error.
func (e *Engine) Render(docID string, st *transaction.State) Rendered {
	tmpl, ok := docTmpls[docID]
	if !ok {
		return Rendered{Title: "Document", Body: "Document content not available."}
	}

	now := e.now()
	ctx := e.buildContext(now, st)

	var buf strings.Builder
	if err := tmpl.Execute(&buf, ctx); err != nil {
		// Templates are package data; a failure here is a programming error.
		panic(fmt.Sprintf("document: render %s: %v", docID, err))
	}
	return Rendered{
		Title: docTitles[docID],
		Body:  strings.TrimSpace(buf.String()),
	}
}

func (e *Engine) buildContext(now time.Time, st *transaction.State) docContext {
	num := docNumber(now)
	method := transaction.ParsePaymentMethod(string(st.Escrow.PaymentMethod))

	ctx := docContext{
		Today:         now.Format("January 2, 2006"),
		DocNumber:     num,
		TransactionID: st.ID,
		Vessel:        st.Vessel,
		Buyer:         st.Parties.Buyer,
		Seller:        st.Parties.Seller,
		Terms:         st.Terms,
		Escrow:        st.Escrow,
		Closing:       Closing(st.Terms),
		WireFinal:     WireFinal(st.Terms),

		PaymentMethodLabel: method.Label(),
	}
	if ctx.TransactionID == "" {
		ctx.TransactionID = "BC-" + num
	}
	ctx.DepositHolder = st.Terms.EscrowCompany
	if ctx.DepositHolder == "" {
		ctx.DepositHolder = st.Escrow.EscrowCompanyName
	}
	if method == transaction.PayEscrow {
		ctx.WireRecipient = st.Escrow.EscrowCompanyName
	} else if st.Parties.Seller.Name != "" {
		ctx.WireRecipient = st.Parties.Seller.Name
	} else {
		ctx.WireRecipient = "[Recipient]"
	}
	ctx.PaymentBlock = renderBlock(method, ctx)
	return ctx
}

func renderBlock(method transaction.PaymentMethod, ctx docContext) string {
	var buf strings.Builder
	if err := blockTmpls[method].Execute(&buf, ctx); err != nil {
		panic(fmt.Sprintf("document: render payment block %s: %v", method, err))
	}
	return buf.String()
}

// docNumber derives the short reference printed on numbered documents:
// the render time in milliseconds, base-36, upper-cased.
func docNumber(now time.Time) string {
	return strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
}

// ExportHTML wraps a rendered document in a self-contained printable page.
// Signed documents carry a signature note under the body.
func ExportHTML(r Rendered, signed bool) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("<title>" + html.EscapeString(r.Title) + "</title>\n")
	b.WriteString(`<style>
  body {
    font-family: 'Courier New', monospace;
    font-size: 11px;
    line-height: 1.4;
    padding: 40px;
    max-width: 800px;
    margin: 0 auto;
  }
  pre {
    white-space: pre-wrap;
    word-wrap: break-word;
  }
  @media print {
    body { padding: 20px; }
  }
</style>
`)
	b.WriteString("</head>\n<body>\n<pre>")
	b.WriteString(html.EscapeString(r.Body))
	b.WriteString("</pre>\n")
	if signed {
		b.WriteString(`<p style="margin-top: 40px; color: green; font-family: Arial;">✓ DIGITALLY SIGNED via BoatCloser</p>` + "\n")
	}
	b.WriteString("</body>\n</html>\n")
	return b.String()
}
