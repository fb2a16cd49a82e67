package i18n

// Message catalogs, keyed by language. Italian is the authoritative
// catalog; the English one mirrors it for remote offices.
var catalogs = map[string]map[string]string{
	"it": {
		"article.section.general":                  "Dati generali",
		"article.section.offer":                    "Offerta",
		"article.section.category":                 "Categoria",
		"article.section.pallet_type":              "Tipo pallet",
		"article.section.pallet_sheet":             "Foglio pallet",
		"article.section.quality_model":            "Modello controllo qualità",
		"article.section.dimensions_weight":        "Dimensioni e peso",
		"article.section.productivity":             "Produttività",
		"article.section.labels":                   "Etichette",
		"article.section.production_approval":      "Approvazione produzione",
		"article.section.quality_approval":         "Approvazione qualità",
		"article.section.commercial_approval":      "Approvazione commerciale",
		"article.section.client_approval":          "Approvazione cliente",
		"article.section.materials":                "Materiali",
		"article.section.machinery":                "Macchinari",
		"article.section.critical_issues":          "Criticità",
		"article.section.packaging_instructions":   "Istruzioni di confezionamento",
		"article.section.operating_instructions":   "Istruzioni operative",
		"article.section.palletizing_instructions": "Istruzioni di pallettizzazione",
		"article.section.check_materials":          "Controllo materiali",
		"article.section.orders":                   "Ordini di produzione",

		"article.field.code":                    "Codice articolo LAS",
		"article.field.description":             "Descrizione",
		"article.field.client_code":             "Codice cliente",
		"article.field.note":                    "Note",
		"article.field.unit_of_measure":         "Unità di misura",
		"article.field.obsolete":                "Obsoleto",
		"article.field.length":                  "Lunghezza (cm)",
		"article.field.depth":                   "Profondità (cm)",
		"article.field.height":                  "Altezza (cm)",
		"article.field.net_weight":              "Peso netto (kg)",
		"article.field.gross_weight":            "Peso lordo (kg)",
		"article.field.average_productivity":    "Produttività media",
		"article.field.theoretical_productivity": "Produttività teorica",
		"article.field.num_labels":              "Numero etichette",
		"article.field.labels_per_package":      "Etichette per collo",
		"article.field.approved":                "Approvato",
		"article.field.approved_by":             "Approvato da",
		"article.field.approved_at":             "Data approvazione",
		"article.field.volume":                  "Volume (dmc)",
		"article.field.units_per_neck":          "Pezzi per collo",
		"article.field.plan_packaging":          "Colli per piano",
		"article.field.pallet_plans":            "Piani per pallet",
		"article.field.interlayer_every_floors": "Interfalda ogni piani",
		"article.field.colli_per_pallet":        "Colli per pallet",
		"article.field.units_per_pallet":        "Pezzi per pallet",
		"article.field.material_code":           "Codice materiale",
		"article.field.quantity":                "Quantità",
		"article.field.expected_quantity":       "Quantità prevista",
		"article.field.effective_quantity":      "Quantità effettiva",
		"article.field.worked_quantity":         "Quantità lavorata",
		"article.field.order_number":            "Numero ordine",
		"article.field.order_status":            "Stato",

		"common.yes": "Sì",
		"common.no":  "No",

		"order.status.0": "Pianificato",
		"order.status.1": "In attrezzaggio",
		"order.status.2": "Lanciato",
		"order.status.3": "In produzione",
		"order.status.4": "Sospeso",
		"order.status.5": "Completato",
	},
	"en": {
		"article.section.general":                  "General data",
		"article.section.offer":                    "Offer",
		"article.section.category":                 "Category",
		"article.section.pallet_type":              "Pallet type",
		"article.section.pallet_sheet":             "Pallet sheet",
		"article.section.quality_model":            "Quality control model",
		"article.section.dimensions_weight":        "Dimensions and weight",
		"article.section.productivity":             "Productivity",
		"article.section.labels":                   "Labels",
		"article.section.production_approval":      "Production approval",
		"article.section.quality_approval":         "Quality approval",
		"article.section.commercial_approval":      "Commercial approval",
		"article.section.client_approval":          "Client approval",
		"article.section.materials":                "Materials",
		"article.section.machinery":                "Machinery",
		"article.section.critical_issues":          "Critical issues",
		"article.section.packaging_instructions":   "Packaging instructions",
		"article.section.operating_instructions":   "Operating instructions",
		"article.section.palletizing_instructions": "Palletizing instructions",
		"article.section.check_materials":          "Material checks",
		"article.section.orders":                   "Production orders",

		"article.field.code":                    "LAS article code",
		"article.field.description":             "Description",
		"article.field.client_code":             "Client code",
		"article.field.note":                    "Notes",
		"article.field.unit_of_measure":         "Unit of measure",
		"article.field.obsolete":                "Obsolete",
		"article.field.length":                  "Length (cm)",
		"article.field.depth":                   "Depth (cm)",
		"article.field.height":                  "Height (cm)",
		"article.field.net_weight":              "Net weight (kg)",
		"article.field.gross_weight":            "Gross weight (kg)",
		"article.field.average_productivity":    "Average productivity",
		"article.field.theoretical_productivity": "Theoretical productivity",
		"article.field.num_labels":              "Label count",
		"article.field.labels_per_package":      "Labels per package",
		"article.field.approved":                "Approved",
		"article.field.approved_by":             "Approved by",
		"article.field.approved_at":             "Approval date",
		"article.field.volume":                  "Volume (dmc)",
		"article.field.units_per_neck":          "Units per neck",
		"article.field.plan_packaging":          "Packages per layer",
		"article.field.pallet_plans":            "Layers per pallet",
		"article.field.interlayer_every_floors": "Interlayer every floors",
		"article.field.colli_per_pallet":        "Packages per pallet",
		"article.field.units_per_pallet":        "Units per pallet",
		"article.field.material_code":           "Material code",
		"article.field.quantity":                "Quantity",
		"article.field.expected_quantity":       "Expected quantity",
		"article.field.effective_quantity":      "Effective quantity",
		"article.field.worked_quantity":         "Worked quantity",
		"article.field.order_number":            "Order number",
		"article.field.order_status":            "Status",

		"common.yes": "Yes",
		"common.no":  "No",

		"order.status.0": "Planned",
		"order.status.1": "Setup",
		"order.status.2": "Launched",
		"order.status.3": "In progress",
		"order.status.4": "Suspended",
		"order.status.5": "Completed",
	},
}
