package engine

// hiraganaSyllables is the romaji→hiragana rule table, written from the
// textual rules of §4.1 (vowels, each consonant row, youon combinations,
// terminal nn) rather than transcribed from a generated data file.
var hiraganaSyllables = map[string]string{
	"a": "あ", "i": "い", "u": "う", "e": "え", "o": "お",

	"ka": "か", "ki": "き", "ku": "く", "ke": "け", "ko": "こ",
	"kya": "きゃ", "kyu": "きゅ", "kyo": "きょ",

	"sa": "さ", "shi": "し", "si": "し", "su": "す", "se": "せ", "so": "そ",
	"sha": "しゃ", "shu": "しゅ", "sho": "しょ",

	"za": "ざ", "ji": "じ", "zi": "じ", "zu": "ず", "ze": "ぜ", "zo": "ぞ",
	"ja": "じゃ", "ju": "じゅ", "jo": "じょ",

	"ta": "た", "chi": "ち", "ti": "ち", "tsu": "つ", "tu": "つ", "te": "て", "to": "と",
	"cha": "ちゃ", "chu": "ちゅ", "cho": "ちょ",

	"da": "だ", "di": "ぢ", "du": "づ", "de": "で", "do": "ど",
	"dya": "ぢゃ", "dyu": "ぢゅ", "dyo": "ぢょ",

	"na": "な", "ni": "に", "nu": "ぬ", "ne": "ね", "no": "の",
	"nya": "にゃ", "nyu": "にゅ", "nyo": "にょ",

	"ha": "は", "hi": "ひ", "fu": "ふ", "hu": "ふ", "he": "へ", "ho": "ほ",
	"hya": "ひゃ", "hyu": "ひゅ", "hyo": "ひょ",
	"fa": "ふぁ", "fi": "ふぃ", "fe": "ふぇ", "fo": "ふぉ",

	"ba": "ば", "bi": "び", "bu": "ぶ", "be": "べ", "bo": "ぼ",
	"bya": "びゃ", "byu": "びゅ", "byo": "びょ",

	"pa": "ぱ", "pi": "ぴ", "pu": "ぷ", "pe": "ぺ", "po": "ぽ",
	"pya": "ぴゃ", "pyu": "ぴゅ", "pyo": "ぴょ",

	"ma": "ま", "mi": "み", "mu": "む", "me": "め", "mo": "も",
	"mya": "みゃ", "myu": "みゅ", "myo": "みょ",

	"ya": "や", "yu": "ゆ", "yo": "よ",

	"ra": "ら", "ri": "り", "ru": "る", "re": "れ", "ro": "ろ",
	"rya": "りゃ", "ryu": "りゅ", "ryo": "りょ",

	"wa": "わ", "wo": "を", "wi": "うぃ", "we": "うぇ",

	"ga": "が", "gi": "ぎ", "gu": "ぐ", "ge": "げ", "go": "ご",
	"gya": "ぎゃ", "gyu": "ぎゅ", "gyo": "ぎょ",

	"va": "ゔぁ", "vi": "ゔぃ", "vu": "ゔ", "ve": "ゔぇ", "vo": "ゔぉ",

	"xa": "ぁ", "xi": "ぃ", "xu": "ぅ", "xe": "ぇ", "xo": "ぉ",
	"xya": "ゃ", "xyu": "ゅ", "xyo": "ょ", "xtu": "っ", "ltu": "っ",
	"la": "ぁ", "li": "ぃ", "lu": "ぅ", "le": "ぇ", "lo": "ぉ",

	"nn": "ん",
}

var hiraganaZComposite = map[rune]string{
	',': "‥", '.': "…", '/': "・",
	'[': "『", ']': "』",
	'h': "←", 'j': "↓", 'k': "↑", 'l': "→",
}

var hiraganaTable = &kanaTable{
	syllables:  hiraganaSyllables,
	prefixes:   buildPrefixes(hiraganaSyllables),
	geminate:   "っ",
	moraicN:    "ん",
	zComposite: hiraganaZComposite,
}

func convertHiragana(pending string, input rune) ([]BufferPair, bool) {
	return hiraganaTable.convert(LetterHiragana, pending, input)
}
