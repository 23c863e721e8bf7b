package document

// Template sources for the document catalog. The text is fixed; transaction
// data flows in through the render context, with bracketed placeholders
// standing in for anything not yet collected.

var docTitles = map[string]string{
	"purchase-agreement":         "VESSEL PURCHASE AGREEMENT",
	"bill-of-sale":               "VESSEL BILL OF SALE",
	"closing-statement":          "CLOSING STATEMENT",
	"deposit-receipt":            "DEPOSIT RECEIPT",
	"escrow-instructions":        "ESCROW & PAYMENT INSTRUCTIONS",
	"survey-authorization":       "SURVEY AUTHORIZATION",
	"sea-trial-agreement":        "SEA TRIAL AGREEMENT",
	"vessel-acceptance":          "VESSEL ACCEPTANCE",
	"title-transfer":             "TITLE TRANSFER",
	"lien-release":               "LIEN RELEASE AFFIDAVIT",
	"counter-offer":              "COUNTER OFFER ADDENDUM",
	"conditional-acceptance":     "CONDITIONAL ACCEPTANCE",
	"vessel-rejection":           "VESSEL REJECTION & DEPOSIT REFUND REQUEST",
	"wire-transfer-confirmation": "WIRE TRANSFER CONFIRMATION",
}

var docTemplates = map[string]string{
	"purchase-agreement":         purchaseAgreementTmpl,
	"bill-of-sale":               billOfSaleTmpl,
	"closing-statement":          closingStatementTmpl,
	"deposit-receipt":            depositReceiptTmpl,
	"escrow-instructions":        escrowInstructionsTmpl,
	"survey-authorization":       surveyAuthorizationTmpl,
	"sea-trial-agreement":        seaTrialAgreementTmpl,
	"vessel-acceptance":          vesselAcceptanceTmpl,
	"title-transfer":             titleTransferTmpl,
	"lien-release":               lienReleaseTmpl,
	"counter-offer":              counterOfferTmpl,
	"conditional-acceptance":     conditionalAcceptanceTmpl,
	"vessel-rejection":           vesselRejectionTmpl,
	"wire-transfer-confirmation": wireTransferConfirmationTmpl,
}

const purchaseAgreementTmpl = `
╔══════════════════════════════════════════════════════════════════════════════╗
║                         VESSEL PURCHASE AGREEMENT                            ║
║                                                                              ║
║                    This is a Legally Binding Contract                        ║
╚══════════════════════════════════════════════════════════════════════════════╝

AGREEMENT NUMBER: PA-{{.DocNumber}}
EFFECTIVE DATE: {{.Today}}

This Vessel Purchase Agreement ("Agreement") is entered into by and between
the parties identified below. This Agreement constitutes the entire agreement
between the parties concerning the purchase and sale of the vessel described
herein and supersedes all prior negotiations, representations, or agreements.

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                              ARTICLE I - PARTIES
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

BUYER:
  Legal Name:    {{or .Buyer.Name "[BUYER FULL LEGAL NAME]"}}
  Address:       {{or .Buyer.Address "[STREET ADDRESS]"}}
  Email:         {{or .Buyer.Email "[EMAIL]"}}
  Phone:         {{or .Buyer.Phone "[PHONE]"}}

SELLER:
  Legal Name:    {{or .Seller.Name "[SELLER FULL LEGAL NAME]"}}
  Address:       {{or .Seller.Address "[STREET ADDRESS]"}}
  Email:         {{or .Seller.Email "[EMAIL]"}}
  Phone:         {{or .Seller.Phone "[PHONE]"}}

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                         ARTICLE II - VESSEL DESCRIPTION
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

  Vessel Name:                    {{or .Vessel.Name "[VESSEL NAME]"}}
  Manufacturer/Builder:           {{or .Vessel.Make "[MAKE]"}}
  Model:                          {{or .Vessel.Model "[MODEL]"}}
  Year of Manufacture:            {{or .Vessel.Year "[YEAR]"}}
  Length Overall (LOA):           {{or .Vessel.Length "[LENGTH]"}} feet
  Hull Identification Number:     {{or .Vessel.HIN "[HIN]"}}
  State/Federal Documentation #:  _____________________________
  Current Location:               _____________________________

The vessel includes all permanently attached equipment, fixtures, and
accessories currently aboard, including but not limited to: electronics,
navigation equipment, safety equipment, anchors, lines, and fenders.

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                          ARTICLE III - PURCHASE PRICE
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

  TOTAL PURCHASE PRICE:           ${{money .Terms.PurchasePrice "[AMOUNT]"}}

  Payment Schedule:
  ├─ Earnest Money Deposit:       ${{money .Terms.DepositAmount "[AMOUNT]"}}
  │   Due upon execution of this Agreement
  │   Held by: {{.DepositHolder}}
  │
  └─ Balance Due at Closing:      ${{balance .Terms.PurchasePrice .Terms.DepositAmount "[AMOUNT]"}}
      Due on or before: {{or .Terms.ClosingDate "[CLOSING DATE]"}}

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                          ARTICLE IV - CONTINGENCIES
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

This Agreement is contingent upon the satisfaction of the following conditions
within {{or .Terms.InspectionDays "10"}} calendar days from the Effective Date:

4.1 MARINE SURVEY: Buyer shall have the right to obtain, at Buyer's expense,
    a marine survey from a qualified marine surveyor. If the survey reveals
    material defects, Buyer may: (a) accept the vessel as-is; (b) negotiate
    repairs with Seller; or (c) terminate this Agreement with full refund
    of the Earnest Money Deposit.

4.2 SEA TRIAL: Buyer shall have the right to conduct a sea trial, with
    Seller or Seller's designated captain operating the vessel. Buyer
    assumes all risk during the sea trial except for Seller's gross
    negligence or willful misconduct.

4.3 TITLE VERIFICATION: Seller shall provide evidence of clear and
    marketable title, free of all liens, encumbrances, and claims. Buyer
    may conduct a title search at Buyer's expense.

4.4 FINANCING (if applicable): Buyer shall have _____ days to obtain
    financing approval. If financing is denied, Buyer may terminate with
    full refund of the Earnest Money Deposit.

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                       ARTICLE V - SELLER'S REPRESENTATIONS
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

Seller represents and warrants that:

5.1 Seller is the sole legal owner of the vessel and has full authority
    to sell and transfer title.

5.2 The vessel is free and clear of all liens, mortgages, security
    interests, encumbrances, and claims of any kind.

5.3 There are no pending or threatened legal actions, claims, or disputes
    relating to the vessel.

5.4 To Seller's knowledge, all information provided regarding the vessel
    is true and accurate.

5.5 Seller will maintain the vessel in its current condition until closing.

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                        ARTICLE VI - AS-IS CONDITION
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

UPON BUYER'S ACCEPTANCE FOLLOWING THE INSPECTION PERIOD, the vessel shall
be sold and conveyed "AS IS, WHERE IS, WITH ALL FAULTS." Seller makes no
warranties, express or implied, including but not limited to warranties of
merchantability or fitness for a particular purpose, except as specifically
set forth in Article V.

Buyer acknowledges that Buyer has had the opportunity to inspect the vessel
and is relying solely on Buyer's own inspection and judgment.

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                            ARTICLE VII - DEFAULT
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

7.1 BUYER DEFAULT: If Buyer fails to perform after the contingency period,
    Seller's sole remedy shall be to retain the Earnest Money Deposit as
    liquidated damages. Both parties agree this amount is a reasonable
    estimate of Seller's damages and not a penalty.

7.2 SELLER DEFAULT: If Seller fails to perform, Buyer shall be entitled
    to: (a) return of the Earnest Money Deposit; and (b) pursuit of any
    other remedies available at law or in equity.

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                            ARTICLE VIII - CLOSING
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

Closing shall occur on or before {{or .Terms.ClosingDate "[CLOSING DATE]"}} at a location
mutually agreed upon by the parties. At closing:

• Buyer shall pay the balance of the purchase price
• Seller shall deliver a properly executed Bill of Sale
• Seller shall provide all keys, manuals, and documentation
• Seller shall execute all documents necessary to transfer title

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                          ARTICLE IX - GOVERNING LAW
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

This Agreement shall be governed by and construed in accordance with the
laws of the state where the vessel is primarily located. Any disputes shall
be resolved through binding arbitration or in the courts of competent
jurisdiction in said state.

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                         ARTICLE X - ENTIRE AGREEMENT
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

This Agreement, together with any addenda or amendments signed by both
parties, constitutes the entire agreement between the parties. No
modification shall be valid unless in writing and signed by both parties.

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                              SIGNATURES
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

BY SIGNING BELOW, THE PARTIES ACKNOWLEDGE THAT THEY HAVE READ, UNDERSTAND,
AND AGREE TO BE BOUND BY ALL TERMS AND CONDITIONS OF THIS AGREEMENT.


BUYER:

X_________________________________          _______________
  {{or .Buyer.Name "[Print Name]"}}                               Date

  Address: {{or .Buyer.Address "________________________________"}}


SELLER:

X_________________________________          _______________
  {{or .Seller.Name "[Print Name]"}}                               Date

  Address: {{or .Seller.Address "________________________________"}}


══════════════════════════════════════════════════════════════════════════════
         IMPORTANT: This document should be reviewed by legal counsel
                    Document generated by BoatCloser.com
══════════════════════════════════════════════════════════════════════════════
`

const billOfSaleTmpl = `
╔══════════════════════════════════════════════════════════════════════════════╗
║                            VESSEL BILL OF SALE                               ║
║                                                                              ║
║                Official Document of Ownership Transfer                       ║
╚══════════════════════════════════════════════════════════════════════════════╝

DOCUMENT NUMBER: BOS-{{.DocNumber}}
DATE OF SALE: {{.Today}}

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                          KNOW ALL MEN BY THESE PRESENTS
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

That {{or .Seller.Name "[SELLER NAME]"}}, hereinafter referred to as
"SELLER," of the address {{or .Seller.Address "[SELLER ADDRESS]"}},

for and in consideration of the sum of:

┌──────────────────────────────────────────────────────────────────────────────┐
│  PURCHASE PRICE: ${{money .Terms.PurchasePrice "[AMOUNT]"}}                                                 │
│  ({{wordsUpperDollars .Terms.PurchasePrice "[AMOUNT IN WORDS]"}})                                                      │
└──────────────────────────────────────────────────────────────────────────────┘

lawful money of the United States of America, to SELLER in hand paid by
{{or .Buyer.Name "[BUYER NAME]"}}, hereinafter referred to as "BUYER,"
of the address {{or .Buyer.Address "[BUYER ADDRESS]"}},

the receipt whereof is hereby acknowledged, does hereby GRANT, BARGAIN, SELL,
TRANSFER, and DELIVER unto BUYER the following described vessel and all
appurtenances thereto:

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                              VESSEL DESCRIPTION
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

  Official Name:              {{or .Vessel.Name "[VESSEL NAME]"}}
  Manufacturer:               {{or .Vessel.Make "[MAKE]"}}
  Model:                      {{or .Vessel.Model "[MODEL]"}}
  Year Built:                 {{or .Vessel.Year "[YEAR]"}}
  Length Overall:             {{or .Vessel.Length "[LENGTH]"}} feet
  Hull Identification Number: {{or .Vessel.HIN "[HIN]"}}
  Hull Material:              ____________________________
  Engine Make/Model:          ____________________________
  Engine Serial Number:       ____________________________
  State Registration #:       ____________________________
  USCG Documentation #:       ____________________________ (if applicable)

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                         INCLUDED EQUIPMENT & ACCESSORIES
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

All equipment, fixtures, and accessories currently aboard the vessel are
included in this sale, including but not limited to:

☑ All electronics and navigation equipment
☑ All safety equipment (life jackets, flares, fire extinguishers)
☑ Anchors, rode, and ground tackle
☑ Dock lines, fenders, and boat hooks
☑ Canvas covers and enclosures
☑ Trailer (if applicable): VIN _________________________

EXCLUDED ITEMS (if any): _______________________________________________

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                          SELLER'S WARRANTIES & COVENANTS
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

SELLER hereby warrants, represents, and covenants that:

1. SELLER is the true and lawful owner of said vessel and has full right,
   power, and authority to sell and convey the same.

2. The vessel is free and clear of all liens, mortgages, encumbrances,
   security interests, claims, and demands of any kind whatsoever.

3. SELLER will WARRANT AND DEFEND the title to said vessel against the
   lawful claims and demands of all persons whomsoever.

4. There are no outstanding debts, marina fees, storage charges, repair
   bills, or other obligations secured by or relating to said vessel.

5. To the best of SELLER's knowledge, all information provided is true,
   accurate, and complete.

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                              AS-IS CONDITION
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

EXCEPT FOR THE WARRANTIES OF TITLE SET FORTH ABOVE, this vessel is sold and
conveyed in its present condition, "AS IS, WHERE IS, WITH ALL FAULTS."

BUYER acknowledges that BUYER has inspected the vessel (or has had the
opportunity to inspect the vessel) and accepts it in its current condition.
SELLER makes no warranties, express or implied, regarding the condition,
seaworthiness, merchantability, or fitness for any particular purpose.

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                              HABENDUM CLAUSE
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

TO HAVE AND TO HOLD the above-described vessel and all appurtenances thereto
unto BUYER, BUYER's heirs, executors, administrators, successors, and assigns
forever.

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                              EXECUTION
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

IN WITNESS WHEREOF, SELLER has executed this Bill of Sale on the date first
written above.


SELLER:

X_________________________________          _______________
  {{or .Seller.Name "[Print Name]"}}                               Date

  Driver's License/ID #: _________________________
  State of Issue: _________________________________


BUYER (Acknowledgment of Receipt):

X_________________________________          _______________
  {{or .Buyer.Name "[Print Name]"}}                               Date


━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                          NOTARY ACKNOWLEDGMENT
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

STATE OF _______________________  )
                                  ) ss.
COUNTY OF ______________________  )

Before me, the undersigned Notary Public, on this _____ day of _____________,
20___, personally appeared {{or .Seller.Name "[SELLER NAME]"}}, known to me
(or proved to me on the basis of satisfactory evidence) to be the person(s)
whose name(s) is/are subscribed to the within instrument and acknowledged to
me that he/she/they executed the same in his/her/their authorized capacity(ies),
and that by his/her/their signature(s) on the instrument the person(s), or
the entity upon behalf of which the person(s) acted, executed the instrument.

WITNESS my hand and official seal.


_________________________________
Notary Public Signature

My Commission Expires: _______________

                                        [NOTARY SEAL]


══════════════════════════════════════════════════════════════════════════════
              This document should be filed with appropriate state agencies
                         Document generated by BoatCloser.com
══════════════════════════════════════════════════════════════════════════════
`

const closingStatementTmpl = `
CLOSING STATEMENT
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

Transaction Date: {{.Today}}
Closing Agent: {{.Terms.EscrowCompany}}

VESSEL:
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
{{.Vessel.Year}} {{.Vessel.Make}} {{.Vessel.Model}} "{{.Vessel.Name}}"
HIN: {{or .Vessel.HIN "[HIN]"}}

PARTIES:
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
Buyer: {{or .Buyer.Name "[Buyer Name]"}}
Seller: {{or .Seller.Name "[Seller Name]"}}

════════════════════════════════════════════════════════════
                    FINANCIAL SUMMARY
════════════════════════════════════════════════════════════

PURCHASE PRICE                           ${{fmt .Closing.PurchasePrice}}

BUYER'S CHARGES:
  Escrow Fee (1.5%)                      ${{fmt .Closing.EscrowFee}}
  Document Preparation Fee               ${{fmt .Closing.DocFee}}
  ─────────────────────────────────────────────────────
  TOTAL BUYER CHARGES                    ${{fmt .Closing.TotalCharges}}

BUYER'S CREDITS:
  Earnest Money Deposit                  (${{fmt .Closing.Deposit}})
  ─────────────────────────────────────────────────────
  TOTAL CREDITS                          (${{fmt .Closing.Deposit}})

════════════════════════════════════════════════════════════
AMOUNT DUE FROM BUYER AT CLOSING         ${{fmt .Closing.AmountDue}}
════════════════════════════════════════════════════════════

SELLER'S PROCEEDS:
  Purchase Price                         ${{fmt .Closing.PurchasePrice}}
  Less: Escrow Fee (1.5%)               (${{fmt .Closing.EscrowFee}})
  Less: Document Fee                    (${{fmt .Closing.DocFee}})
  ─────────────────────────────────────────────────────
  NET TO SELLER                          ${{fmt .Closing.SellerNet}}
════════════════════════════════════════════════════════════

FUNDS DISBURSEMENT:
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
To Seller:                               ${{fmt .Closing.SellerNet}}
To Escrow Company (fees):                ${{fmt .Closing.TotalCharges}}
                                         ─────────────────
TOTAL DISBURSED:                         ${{fmt .Closing.PurchasePrice}}

ACKNOWLEDGMENTS:
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

_________________________          _________________________
Buyer Signature                    Date

_________________________          _________________________
Seller Signature                   Date
`

const depositReceiptTmpl = `
EARNEST MONEY DEPOSIT RECEIPT
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

Date: {{.Today}}

RECEIVED FROM:
{{or .Buyer.Name "[Buyer Name]"}}
{{or .Buyer.Address "[Address]"}}

THE SUM OF: ${{money .Terms.DepositAmount "[Amount]"}}
({{words .Terms.DepositAmount "[Amount in words]"}} dollars)

AS EARNEST MONEY DEPOSIT FOR:
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
Vessel: {{.Vessel.Year}} {{.Vessel.Make}} {{.Vessel.Model}}
Name: "{{.Vessel.Name}}"
HIN: {{or .Vessel.HIN "[HIN]"}}
Seller: {{or .Seller.Name "[Seller Name]"}}
Purchase Price: ${{money .Terms.PurchasePrice "[Amount]"}}

ESCROW TERMS:
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
This deposit is held in escrow by {{.Terms.EscrowCompany}} and will be:
• Applied to purchase price at closing, OR
• Returned to Buyer if transaction fails due to inspection contingencies, OR
• Retained by Seller as liquidated damages if Buyer defaults

RECEIVED BY:
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
{{.Terms.EscrowCompany}}

_________________________          _________________________
Authorized Signature               Date
`

const escrowInstructionsTmpl = `
╔══════════════════════════════════════════════════════════════════════════════╗
║                      ESCROW & PAYMENT INSTRUCTIONS                           ║
╚══════════════════════════════════════════════════════════════════════════════╝

Date: {{.Today}}
Reference: Purchase Agreement for {{.Vessel.Year}} {{.Vessel.Make}} {{.Vessel.Model}}

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                    TRANSACTION SUMMARY
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

Vessel:           {{.Vessel.Year}} {{.Vessel.Make}} {{.Vessel.Model}}
Vessel Name:      "{{or .Vessel.Name "N/A"}}"
HIN:              {{or .Vessel.HIN "[HIN]"}}

Buyer:            {{or .Buyer.Name "[Buyer Name]"}}
Seller:           {{or .Seller.Name "[Seller Name]"}}

Purchase Price:   ${{money .Terms.PurchasePrice "[Amount]"}}
Deposit Amount:   ${{money .Terms.DepositAmount "[Amount]"}}
Balance Due:      ${{balance .Terms.PurchasePrice .Terms.DepositAmount "[Amount]"}}

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                    PAYMENT METHOD
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

Selected Method: {{.PaymentMethodLabel}}

{{.PaymentBlock}}
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                    PAYMENT SCHEDULE
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

1. EARNEST MONEY DEPOSIT
   Amount:    ${{money .Terms.DepositAmount "[Amount]"}}
   Due:       {{or .Escrow.DepositDueDate "Upon execution of Purchase Agreement"}}

2. BALANCE DUE AT CLOSING
   Amount:    ${{balance .Terms.PurchasePrice .Terms.DepositAmount "[Amount]"}}
   Due:       {{or .Escrow.BalanceDueDate .Terms.ClosingDate "At closing"}}

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                    SIGNATURES
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

BUYER ACKNOWLEDGMENT:

_________________________          _________________________
Buyer Signature                    Date


SELLER ACKNOWLEDGMENT:

_________________________          _________________________
Seller Signature                   Date
`

const wirePaymentBlockTmpl = `┌─────────────────────────────────────────────────────────┐
│              WIRE TRANSFER INSTRUCTIONS                 │
├─────────────────────────────────────────────────────────┤
│  Bank Name:       {{or .Escrow.BankName "[Bank Name]"}}
│  Account Name:    {{or .Escrow.AccountName "[Account Name]"}}
│  Routing Number:  {{or .Escrow.RoutingNumber "[Routing Number]"}}
│  Account Number:  {{or .Escrow.AccountNumber "[Account Number]"}}
│                                                         │
│  Reference:       {{or .Vessel.HIN "Boat Purchase"}}
└─────────────────────────────────────────────────────────┘
`

const zellePaymentBlockTmpl = `┌─────────────────────────────────────────────────────────┐
│                  ZELLE INSTRUCTIONS                     │
├─────────────────────────────────────────────────────────┤
│  Send To Email:   {{or .Escrow.ZelleEmail "[Zelle Email]"}}
│  Or Phone:        {{or .Escrow.ZellePhone "[Zelle Phone]"}}
│                                                         │
│  Memo/Note:       {{or .Vessel.HIN "Boat Purchase"}} - {{or .Buyer.Name "Buyer"}}
└─────────────────────────────────────────────────────────┘

⚠️  IMPORTANT: Zelle payments are immediate and cannot be reversed.
    Verify recipient information before sending.
`

const checkPaymentBlockTmpl = `┌─────────────────────────────────────────────────────────┐
│              CASH PAYMENT INSTRUCTIONS                  │
├─────────────────────────────────────────────────────────┤
│  Cash Recipient:                                        │
│  {{or .Escrow.CheckPayableTo "[Recipient Name]"}}
│                                                         │
│  Closing Location:                                      │
│  {{or .Escrow.CheckMailingAddress "[Meeting Location]"}}
│                                                         │
│  Amount Due:       ${{money .Terms.PurchasePrice "[Amount]"}}
└─────────────────────────────────────────────────────────┘

⚠️  IMPORTANT: Cash transactions require extra caution.
    Meet in a public place, bring a witness, count carefully.
`

const escrowPaymentBlockTmpl = `┌─────────────────────────────────────────────────────────┐
│              ESCROW SERVICE DETAILS                     │
├─────────────────────────────────────────────────────────┤
│  Company:         {{or .Escrow.EscrowCompanyName .Terms.EscrowCompany}}
│  Contact:         {{or .Escrow.EscrowContact "[Contact Name]"}}
│  Phone:           {{or .Escrow.EscrowPhone "[Phone]"}}
│  Email:           {{or .Escrow.EscrowEmail "[Email]"}}
└─────────────────────────────────────────────────────────┘

Escrow agent will provide wire instructions upon engagement.
All funds held in trust until closing conditions are met.
`

const surveyAuthorizationTmpl = `
MARINE SURVEY AUTHORIZATION
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

Date: {{.Today}}

VESSEL INFORMATION:
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
Vessel: {{.Vessel.Year}} {{.Vessel.Make}} {{.Vessel.Model}}
Name: "{{.Vessel.Name}}"
HIN: {{or .Vessel.HIN "[HIN]"}}
Length: {{.Vessel.Length}} feet

AUTHORIZATION:
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
I, {{or .Seller.Name "[Seller Name]"}}, as owner of the above-described vessel, hereby authorize:

1. A qualified marine surveyor selected by the prospective Buyer to conduct a complete survey of the vessel

2. The vessel to be hauled out at a facility of the surveyor's choosing for bottom inspection

3. All systems to be operated and tested as part of the survey process

4. Access to all areas of the vessel including bilges, engine compartments, and storage areas

SURVEY PERIOD:
The survey must be completed within {{.Terms.InspectionDays}} days of the date of this authorization.

COSTS:
All costs associated with the survey (surveyor fees, haul-out, etc.) shall be paid by the Buyer.

SELLER ACKNOWLEDGMENT:
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

_________________________          _________________________
Seller Signature                   Date

BUYER ACKNOWLEDGMENT:
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

_________________________          _________________________
Buyer Signature                    Date
`

const seaTrialAgreementTmpl = `
SEA TRIAL AGREEMENT AND LIABILITY WAIVER
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

Date: {{.Today}}

VESSEL INFORMATION:
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
Vessel: {{.Vessel.Year}} {{.Vessel.Make}} {{.Vessel.Model}}
Name: "{{.Vessel.Name}}"
HIN: {{or .Vessel.HIN "[HIN]"}}

PARTIES:
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
Seller/Owner: {{or .Seller.Name "[Seller Name]"}}
Prospective Buyer: {{or .Buyer.Name "[Buyer Name]"}}

AGREEMENT:
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
The Seller agrees to allow the prospective Buyer to conduct a sea trial of the above-described vessel under the following conditions:

1. CAPTAIN: The vessel shall be operated by the Seller or their designated captain during the sea trial

2. FUEL: Fuel costs for the sea trial shall be paid by the Buyer

3. INSURANCE: Seller warrants that adequate insurance is in force covering the vessel and all passengers

4. CONDITION: The Buyer acknowledges the vessel is being test-driven in its current condition

LIABILITY WAIVER:
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
The undersigned Buyer assumes all risk of personal injury during this sea trial and releases the Seller from any and all claims arising from this sea trial, except for claims arising from Seller's gross negligence or willful misconduct.

SIGNATURES:
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

_________________________          _________________________
Seller Signature                   Date

_________________________          _________________________
Buyer Signature                    Date
`

const vesselAcceptanceTmpl = `
VESSEL ACCEPTANCE DOCUMENT
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

Date: {{.Today}}

VESSEL INFORMATION:
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
Vessel: {{.Vessel.Year}} {{.Vessel.Make}} {{.Vessel.Model}}
Name: "{{.Vessel.Name}}"
HIN: {{or .Vessel.HIN "[HIN]"}}

Reference Purchase Agreement dated: {{.Today}}

BUYER'S ACKNOWLEDGMENT:
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
I, {{or .Buyer.Name "[Buyer Name]"}}, hereby acknowledge that I have:

☑ Completed a satisfactory marine survey of the vessel
☑ Completed a satisfactory sea trial of the vessel
☑ Inspected all systems, equipment, and documentation
☑ Reviewed the vessel's maintenance records

ACCEPTANCE:
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
Based on my inspection and due diligence, I hereby ACCEPT the vessel in its current "AS-IS" condition and agree to proceed to closing under the terms of the Purchase Agreement.

I understand that upon signing this acceptance, all inspection contingencies are waived and the transaction shall proceed to closing.

SIGNATURES:
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

_________________________          _________________________
Buyer Signature                    Date

Acknowledged by Seller:

_________________________          _________________________
Seller Signature                   Date
`

const titleTransferTmpl = `
VESSEL TITLE TRANSFER / ASSIGNMENT
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

Date: {{.Today}}

FOR VALUE RECEIVED, the undersigned Seller does hereby sell, assign, and transfer all right, title, and interest in and to the following described vessel:

VESSEL INFORMATION:
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
Vessel Name: {{or .Vessel.Name "[Vessel Name]"}}
Make: {{or .Vessel.Make "[Make]"}}
Model: {{or .Vessel.Model "[Model]"}}
Year: {{or .Vessel.Year "[Year]"}}
Length: {{or .Vessel.Length "[Length]"}} feet
Hull Identification Number (HIN): {{or .Vessel.HIN "[HIN]"}}
State Registration #: _______________________
USCG Documentation #: _______________________ (if applicable)

FROM (SELLER):
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
Name: {{or .Seller.Name "[Seller Name]"}}
Address: {{or .Seller.Address "[Address]"}}

TO (BUYER):
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
Name: {{or .Buyer.Name "[Buyer Name]"}}
Address: {{or .Buyer.Address "[Address]"}}

SELLER'S CERTIFICATION:
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
The Seller certifies that:
• The odometer/hour meter reading is: _________ hours
• The vessel is free of all liens and encumbrances
• The title is being transferred with all warranties of title

SIGNATURES:
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

_________________________          _________________________
Seller Signature                   Date

_________________________          _________________________
Buyer Signature                    Date
`

const lienReleaseTmpl = `
AFFIDAVIT OF NO LIENS
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

STATE OF _________________
COUNTY OF ________________

BEFORE ME, the undersigned authority, personally appeared {{or .Seller.Name "[Seller Name]"}} ("Affiant"), who being duly sworn, deposes and says:

VESSEL IDENTIFICATION:
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
Vessel: {{.Vessel.Year}} {{.Vessel.Make}} {{.Vessel.Model}}
Name: "{{.Vessel.Name}}"
HIN: {{or .Vessel.HIN "[HIN]"}}

AFFIRMATIONS:
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
1. Affiant is the legal owner of the above-described vessel.

2. The vessel is FREE AND CLEAR of all liens, mortgages, security interests, encumbrances, and claims of any kind.

3. There are no outstanding loans, financing agreements, or other debts secured by this vessel.

4. There are no pending lawsuits, judgments, or claims against the vessel.

5. All marina fees, storage fees, and repair bills have been paid in full.

6. Affiant has full authority to sell and transfer clear title to this vessel.

INDEMNIFICATION:
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
Affiant agrees to indemnify and hold harmless the Buyer from any claims, liens, or encumbrances that may arise from Affiant's ownership of the vessel.

_________________________          _________________________
Affiant/Seller Signature           Date

NOTARY:
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
Sworn to and subscribed before me this ___ day of _________, 20___

_________________________
Notary Public
My Commission Expires: _______________
`

const counterOfferTmpl = `
╔══════════════════════════════════════════════════════════════════════════════╗
║                         COUNTER OFFER ADDENDUM                               ║
╚══════════════════════════════════════════════════════════════════════════════╝

Date: {{.Today}}
Reference: Purchase Agreement for {{.Vessel.Year}} {{.Vessel.Make}} {{.Vessel.Model}}

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                    PARTIES
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

Original Offeror:    {{or .Buyer.Name "[Buyer Name]"}}
Counter Offeror:     {{or .Seller.Name "[Seller Name]"}}

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                    VESSEL
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

Vessel: {{.Vessel.Year}} {{.Vessel.Make}} {{.Vessel.Model}}
Name: "{{or .Vessel.Name "N/A"}}"
HIN: {{or .Vessel.HIN "[HIN]"}}

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                    ORIGINAL TERMS
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

Original Purchase Price:    ${{money .Terms.PurchasePrice "[Amount]"}}
Original Deposit:           ${{money .Terms.DepositAmount "[Amount]"}}

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                    COUNTER OFFER TERMS
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

The undersigned Counter Offeror hereby rejects the original offer and
proposes the following modified terms:

Counter Offer Price:        $__________________________

Counter Deposit Amount:     $__________________________

Modified Closing Date:      __________________________

Additional Conditions:
____________________________________________________________
____________________________________________________________
____________________________________________________________

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                    TERMS
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

This Counter Offer shall expire at 5:00 PM on _____________, 20___.

All other terms of the original Purchase Agreement remain unchanged
unless specifically modified above.

Upon acceptance, this Addendum becomes part of the Purchase Agreement.

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                    SIGNATURES
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

COUNTER OFFEROR:

_________________________________          _______________
Signature                                  Date


ACCEPTANCE BY ORIGINAL OFFEROR:

☐ I ACCEPT the above Counter Offer

_________________________________          _______________
Signature                                  Date
`

const conditionalAcceptanceTmpl = `
╔══════════════════════════════════════════════════════════════════════════════╗
║                        CONDITIONAL ACCEPTANCE                                ║
║                   Acceptance Subject to Repairs/Conditions                   ║
╚══════════════════════════════════════════════════════════════════════════════╝

Date: {{.Today}}
Reference: Purchase Agreement for {{.Vessel.Year}} {{.Vessel.Make}} {{.Vessel.Model}}

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                    VESSEL INFORMATION
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

Vessel: {{.Vessel.Year}} {{.Vessel.Make}} {{.Vessel.Model}}
Name: "{{or .Vessel.Name "N/A"}}"
HIN: {{or .Vessel.HIN "[HIN]"}}

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                    PARTIES
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

Buyer:  {{or .Buyer.Name "[Buyer Name]"}}
Seller: {{or .Seller.Name "[Seller Name]"}}

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                    CONDITIONAL ACCEPTANCE
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

I, {{or .Buyer.Name "[Buyer Name]"}}, hereby CONDITIONALLY ACCEPT
the vessel subject to the following repairs/conditions being completed
by the Seller PRIOR TO CLOSING:

REQUIRED REPAIRS/CONDITIONS:

1. ____________________________________________________________

2. ____________________________________________________________

3. ____________________________________________________________

4. ____________________________________________________________

5. ____________________________________________________________

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                    TERMS
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

☐ Repairs to be completed at SELLER'S expense
☐ Repairs to be completed at BUYER'S expense
☐ Cost to be split: Seller ____% / Buyer ____%

Repairs must be completed by: ______________________

Upon satisfactory completion of the above conditions, Buyer agrees to
proceed to closing under the terms of the Purchase Agreement.

If conditions are not met, Buyer reserves the right to:
☐ Cancel the transaction and receive full deposit refund
☐ Accept the vessel as-is with a price reduction of $__________

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                    SIGNATURES
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

BUYER:

_________________________________          _______________
{{or .Buyer.Name "Buyer Signature"}}                              Date


SELLER ACKNOWLEDGMENT & AGREEMENT:

_________________________________          _______________
{{or .Seller.Name "Seller Signature"}}                              Date
`

const vesselRejectionTmpl = `
╔══════════════════════════════════════════════════════════════════════════════╗
║                           VESSEL REJECTION                                   ║
║                      & Deposit Refund Request                                ║
╚══════════════════════════════════════════════════════════════════════════════╝

Date: {{.Today}}
Reference: Purchase Agreement for {{.Vessel.Year}} {{.Vessel.Make}} {{.Vessel.Model}}

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                    VESSEL INFORMATION
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

Vessel: {{.Vessel.Year}} {{.Vessel.Make}} {{.Vessel.Model}}
Name: "{{or .Vessel.Name "N/A"}}"
HIN: {{or .Vessel.HIN "[HIN]"}}

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                    PARTIES
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

Buyer:  {{or .Buyer.Name "[Buyer Name]"}}
        {{or .Buyer.Address "[Address]"}}

Seller: {{or .Seller.Name "[Seller Name]"}}
        {{or .Seller.Address "[Address]"}}

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                    NOTICE OF REJECTION
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

I, {{or .Buyer.Name "[Buyer Name]"}}, hereby give notice that I am
REJECTING the above-described vessel and TERMINATING the Purchase Agreement
pursuant to the inspection contingency provisions.

REASON FOR REJECTION (check all that apply):

☐ Unsatisfactory marine survey results
☐ Unsatisfactory sea trial results
☐ Material defects discovered
☐ Title issues
☐ Undisclosed damage or condition
☐ Other: ________________________________________________

DETAILS:
____________________________________________________________
____________________________________________________________
____________________________________________________________

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                    DEPOSIT REFUND REQUEST
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

Earnest Money Deposit Amount:    ${{money .Terms.DepositAmount "[Amount]"}}
Held By:                         {{.DepositHolder}}

I hereby request the FULL REFUND of my earnest money deposit as provided
for under the inspection contingency of the Purchase Agreement.

REFUND PAYMENT METHOD:

☐ Return via same method as original payment
☐ Wire Transfer to:
    Bank: _________________________
    Routing #: ____________________
    Account #: ____________________
☐ Check mailed to address above
☐ Zelle to: _______________________

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                    SIGNATURES
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

BUYER:

_________________________________          _______________
{{or .Buyer.Name "Buyer Signature"}}                              Date


SELLER ACKNOWLEDGMENT:

_________________________________          _______________
{{or .Seller.Name "Seller Signature"}}                              Date


ESCROW AGENT AUTHORIZATION TO RELEASE DEPOSIT:

_________________________________          _______________
Authorized Signature                       Date
`

const wireTransferConfirmationTmpl = `
╔══════════════════════════════════════════════════════════════════════════════╗
║                       WIRE TRANSFER CONFIRMATION                             ║
║                        Final Payment Verification                            ║
╚══════════════════════════════════════════════════════════════════════════════╝

Date: {{.Today}}
Transaction ID: {{.TransactionID}}

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                    TRANSACTION DETAILS
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

Vessel: {{.Vessel.Year}} {{.Vessel.Make}} {{.Vessel.Model}}
Name: "{{or .Vessel.Name "N/A"}}"
HIN: {{or .Vessel.HIN "[HIN]"}}

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                    PAYMENT SUMMARY
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

Purchase Price:              ${{money .Terms.PurchasePrice "[Amount]"}}
Less: Deposit Paid:         -${{money .Terms.DepositAmount "[Amount]"}}
                            ─────────────────
FINAL WIRE AMOUNT:           ${{fmt .WireFinal}}

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                    SENDER (BUYER)
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

Name:           {{or .Buyer.Name "[Buyer Name]"}}
Bank Name:      _________________________________
Account #:      _________________________________
Wire Ref #:     _________________________________
Date Sent:      _________________________________
Time Sent:      _________________________________

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                    RECIPIENT (SELLER/ESCROW)
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

Name:           {{.WireRecipient}}
Bank Name:      {{or .Escrow.BankName "_________________________________"}}
Routing #:      {{or .Escrow.RoutingNumber "_________________________________"}}
Account #:      {{or .Escrow.AccountNumber "_________________________________"}}

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
                    CONFIRMATIONS
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

BUYER CONFIRMATION:
I confirm that I have initiated a wire transfer in the amount of
${{fmt .WireFinal}} to the account specified above.

_________________________________          _______________
{{or .Buyer.Name "Buyer Signature"}}                              Date

Wire Confirmation Number: _________________________________


SELLER/ESCROW CONFIRMATION:
I confirm receipt of wire transfer in the amount of ${{fmt .WireFinal}}.

_________________________________          _______________
Recipient Signature                        Date

Date/Time Received: _________________________________

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

⚠️  IMPORTANT: Keep this confirmation for your records.
    Wire reference numbers should be saved for tracking purposes.
`
