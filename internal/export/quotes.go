package export

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/jmylchreest/sunsetology/internal/colour"
)

// Lang selects the language of the built-in quotes.
type Lang string

const (
	LangEnglish  Lang = "en"
	LangChinese  Lang = "zh"
	LangJapanese Lang = "ja"
	LangArabic   Lang = "ar"
)

// ValidLangs returns the list of quote languages.
func ValidLangs() []Lang {
	return []Lang{LangEnglish, LangChinese, LangJapanese, LangArabic}
}

// RTL reports whether l is written right to left.
func (l Lang) RTL() bool {
	return l == LangArabic
}

// Latin reports whether the bundled Go fonts can draw l.
func (l Lang) Latin() bool {
	return l == LangEnglish
}

// Quotes are the captions printed on exported artwork, per language.
var Quotes = map[Lang][]string{
	LangEnglish: {
		"Sunsets are proof that no matter what happens, every day can end beautifully.",
		"The sky broke like an egg into full sunset and the water caught fire.",
		"Every sunset brings the promise of a new dawn.",
		"Softly the evening came with the sunset.",
	},
	LangChinese: {
		"日落跌进昭昭星野，人间忽晚，山河已秋。",
		"落日余晖，待你而归。",
		"云朵偷喝了我放在屋顶的酒，于是它脸红变成了晚霞。",
		"晓看天色暮看云，行也思君，坐也思君。",
	},
	LangJapanese: {
		"夕焼けは、明日への希望の色。",
		"空が燃えるような、美しい別れ。",
		"一日が静かに幕を下ろす。",
		"黄昏時は、魔法の時間。",
	},
	LangArabic: {
		"الغروب هو الدليل على أن النهايات يمكن أن تكون جميلة أيضًا.",
		"كل غروب يأتي بوعد لشروق جديد.",
		"تتحدث السماء بألوان عند الغروب.",
		"هدوء المساء يبدأ مع الغروب.",
	},
}

// QuoteFor picks a quote in lang for p. The same palette always gets the
// same quote.
func QuoteFor(p *colour.Palette, lang Lang) (string, error) {
	quotes, ok := Quotes[lang]
	if !ok {
		return "", fmt.Errorf("unknown language: %s (valid languages: %v)", lang, ValidLangs())
	}
	sum := xxhash.Sum64String(strings.Join(p.ToHex(), ""))
	return quotes[sum%uint64(len(quotes))], nil
}
