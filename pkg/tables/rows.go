package tables

// Unknown fills target columns the polypeptide does not provide.
const Unknown = "Unknown"

type DrugRow struct {
	DrugBankID        string `json:"drugbank_id"`
	Name              string `json:"name"`
	Type              string `json:"type"`
	Description       string `json:"description"`
	DosageForm        string `json:"dosage_form"`
	Indications       string `json:"indications"`
	MechanismOfAction string `json:"mechanism_of_action"`
	FoodInteractions  string `json:"food_interactions"`
}

type SynonymRow struct {
	DrugBankID string   `json:"drugbank_id"`
	Synonyms   []string `json:"synonyms"`
}

// Product is the flattened view of a marketed product.
type Product struct {
	Name           string `json:"product_name"`
	Manufacturer   string `json:"manufacturer"`
	NDCCode        string `json:"ndc_code"`
	Form           string `json:"form"`
	Route          string `json:"route"`
	Strength       string `json:"strength"`
	Country        string `json:"country"`
	ApprovalAgency string `json:"approval_agency"`
}

type ProductRow struct {
	DrugBankID string    `json:"drugbank_id"`
	Products   []Product `json:"products"`
}

type PathwayRow struct {
	DrugBankID string `json:"drugbank_id"`
	Drug       string `json:"drug"`
	Pathway    string `json:"pathway"`
	Category   string `json:"category"`
}

type TargetRow struct {
	DrugBankID       string `json:"drugbank_id"`
	Drug             string `json:"drug"`
	TargetID         string `json:"target_id"`
	TargetName       string `json:"target_name"`
	Source           string `json:"source"`
	ExternalID       string `json:"external_id"`
	PolypeptideName  string `json:"polypeptide_name"`
	GeneName         string `json:"gene_name"`
	GenAtlasID       string `json:"genatlas_id"`
	Chromosome       string `json:"chromosome"`
	CellularLocation string `json:"cellular_location"`
}

type InteractionRow struct {
	DrugBankID        string `json:"drugbank_id"`
	Drug              string `json:"drug"`
	InteractingDrugID string `json:"interacting_drug_id"`
	InteractingDrug   string `json:"interacting_drug"`
	Description       string `json:"description"`
}

// StatusRow counts the drugs in one approval category.
type StatusRow struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// GeneRow links a target gene to a product of a drug acting on it.
type GeneRow struct {
	Gene          string `json:"gene"`
	DrugBankID    string `json:"drugbank_id"`
	Drug          string `json:"drug"`
	ProductName   string `json:"product_name"`
	ProductID     string `json:"product_id"`
	ProductIDType string `json:"product_id_type"`
}

type AminoAcidRow struct {
	DrugBankID     string `json:"drugbank_id"`
	TargetID       string `json:"target_id"`
	TargetName     string `json:"target_name"`
	AminoAcidCount int    `json:"amino_acid_count"`
}
