package outcome

// Text is the presentation copy for one outcome
type Text struct {
	Title       string
	Description string
	Color       string
}

// TextTable maps every outcome to its copy
type TextTable map[Kind]Text

// Lookup returns the entry for k, or an empty Text with the kind name as title
func (t TextTable) Lookup(k Kind) Text {
	if txt, ok := t[k]; ok {
		return txt
	}
	return Text{Title: k.String()}
}

// Outcome colors shared by both registers
const (
	ColorAnomaly            = "#ff00ff"
	ColorNegativePair       = "#e0e0e0"
	ColorConcordantNegative = "#aaaaaa"
	ColorAffirmative        = "#ff3333"
)

// PlayfulText is the game register
var PlayfulText = TextTable{
	Anomaly:            {Title: "立筊", Description: "【太鬼了】系統異常，偵測到稀有變數！", Color: ColorAnomaly},
	NegativePair:       {Title: "笑筊", Description: "【要確欸？】是不是沒想清楚？再一次！", Color: ColorNegativePair},
	ConcordantNegative: {Title: "陰筊", Description: "【先不要】感覺不太對，頻率沒對上！", Color: ColorConcordantNegative},
	Affirmative:        {Title: "聖筊", Description: "【歐氣爆發】不用懷疑，這波穩了！", Color: ColorAffirmative},
}

// DivinationText is the solemn register
var DivinationText = TextTable{
	Anomaly:            {Title: "立筊", Description: "【天降神蹟】所求之事，神明深意", Color: ColorAnomaly},
	NegativePair:       {Title: "笑筊", Description: "【機緣未到】心意未定，再次請示", Color: ColorNegativePair},
	ConcordantNegative: {Title: "陰筊", Description: "【不宜】時機未到，宜守不宜進", Color: ColorConcordantNegative},
	Affirmative:        {Title: "聖筊", Description: "【允准】所求遂意，天人感應", Color: ColorAffirmative},
}

// Texts holds both registers; the divination flag picks one
type Texts struct {
	Playful    TextTable
	Divination TextTable
}

// DefaultTexts returns the built-in registers
func DefaultTexts() Texts {
	return Texts{Playful: PlayfulText, Divination: DivinationText}
}

// Select returns the table for the active register
func (t Texts) Select(divination bool) TextTable {
	if divination {
		return t.Divination
	}
	return t.Playful
}
