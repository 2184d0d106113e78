package service

// ProcessType separates the core value chain from supporting processes.
type ProcessType string

const (
	ProcessCore    ProcessType = "core"
	ProcessSupport ProcessType = "support"
)

// ProcessItem is one entry in the fixed management-system process map shown
// on the start page and searched alongside documents and categories.
type ProcessItem struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Href        string      `json:"href"`
	Type        ProcessType `json:"type"`
}

// ProcessCatalog returns the fixed process map. The catalog is static
// content, not database state.
func ProcessCatalog() []ProcessItem {
	return processItems
}

var processItems = []ProcessItem{
	{Title: "Affärsidé och Policy", Description: "Grundläggande riktning för verksamheten.", Href: "/kategori/affarside-och-policy", Type: ProcessSupport},
	{Title: "Mål och Mättetal", Description: "Nyckeltal som säkerställer att vi rör oss mot strategin.", Href: "http://insidan.pitea.local/?page_id=228", Type: ProcessSupport},
	{Title: "Handlingsplan", Description: "Planerade aktiviteter för att nå målen.", Href: "http://insidan.pitea.local/?page_id=230", Type: ProcessSupport},
	{Title: "Organisation", Description: "Roller, ansvar och struktur.", Href: "http://insidan.pitea.local/?page_id=232", Type: ProcessSupport},
	{Title: "Ansvar och Befogenheter", Description: "Tydliggör vem som beslutar vad.", Href: "http://insidan.pitea.local/?page_id=234", Type: ProcessSupport},
	{Title: "Lagar och Krav", Description: "Regelverk som styr vår verksamhet.", Href: "http://insidan.pitea.local/?page_id=236", Type: ProcessSupport},
	{Title: "Kommunikation", Description: "Intern och extern informationsdelning.", Href: "http://insidan.pitea.local/?page_id=238", Type: ProcessSupport},
	{Title: "Ledning och Genomgång", Description: "Ledningens genomgångar och uppföljning.", Href: "http://insidan.pitea.local/?page_id=240", Type: ProcessSupport},
	{Title: "Förfrågan", Description: "Inkommande behov från kund eller intern beställare.", Href: "http://insidan.pitea.local/VLS/PUBLICERADE/SR5.2-321.pdf", Type: ProcessCore},
	{Title: "Anbudskalkyl", Description: "Kalkylering och prisförslag.", Href: "http://insidan.pitea.local/VLS/PUBLICERADE/SR5.2-322.pdf", Type: ProcessCore},
	{Title: "Anbud", Description: "Offertarbete och överlämning.", Href: "http://insidan.pitea.local/VLS/PUBLICERADE/SR5.2-323.pdf", Type: ProcessCore},
	{Title: "Avtal", Description: "Kontraktskrivning och villkor.", Href: "http://insidan.pitea.local/VLS/PUBLICERADE/SR5.2-324.pdf", Type: ProcessCore},
	{Title: "Projektadministration", Description: "Planering, dokumentstyrning och resursbokning.", Href: "http://insidan.pitea.local/VLS/PUBLICERADE/SR5.2-326.pdf", Type: ProcessCore},
	{Title: "Projekt Genomförande", Description: "Produktion, montage och ändringshantering.", Href: "http://insidan.pitea.local/VLS/PUBLICERADE/SR5.2-328.pdf", Type: ProcessCore},
	{Title: "Hantering och Leverans", Description: "Logistik, leverans och mottagning hos kund.", Href: "http://insidan.pitea.local/VLS/PUBLICERADE/SR5.2-329.pdf", Type: ProcessCore},
	{Title: "Faktura", Description: "Debitering och ekonomisk uppföljning.", Href: "http://insidan.pitea.local/VLS/PUBLICERADE/SR5.2-543.pdf", Type: ProcessCore},
	{Title: "Tidplaner & Sammanfattning", Description: "Projektstängning, lärdomar och rapportering.", Href: "http://insidan.pitea.local/VLS/PUBLICERADE/SR5.2-320.pdf", Type: ProcessCore},
	{Title: "Personalhandbok", Description: "Policyer, rutiner och onboarding.", Href: "http://insidan.pitea.local/?page_id=260", Type: ProcessSupport},
	{Title: "Arbetsmiljö", Description: "Systematiskt arbetsmiljöarbete.", Href: "http://insidan.pitea.local/?page_id=262", Type: ProcessSupport},
	{Title: "Miljö", Description: "Miljörutiner och uppföljning.", Href: "http://insidan.pitea.local/?page_id=264", Type: ProcessSupport},
	{Title: "Inköp", Description: "Beställningar, leverantörer och avtal.", Href: "http://insidan.pitea.local/?page_id=268", Type: ProcessSupport},
	{Title: "Service och Underhåll", Description: "Maskiner, utrustning och förebyggande service.", Href: "http://insidan.pitea.local/?page_id=270", Type: ProcessSupport},
	{Title: "Uppföljning och Kontroll", Description: "Revisioner, kontroller och mätetal.", Href: "http://insidan.pitea.local/?page_id=272", Type: ProcessSupport},
	{Title: "Avvikelsehantering", Description: "Upptäcka, rapportera och åtgärda avvikelser.", Href: "http://insidan.pitea.local/?page_id=274", Type: ProcessSupport},
}
