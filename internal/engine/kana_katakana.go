package engine

// katakanaSyllables mirrors hiraganaSyllables glyph-for-glyph in katakana.
var katakanaSyllables = map[string]string{
	"a": "ア", "i": "イ", "u": "ウ", "e": "エ", "o": "オ",

	"ka": "カ", "ki": "キ", "ku": "ク", "ke": "ケ", "ko": "コ",
	"kya": "キャ", "kyu": "キュ", "kyo": "キョ",

	"sa": "サ", "shi": "シ", "si": "シ", "su": "ス", "se": "セ", "so": "ソ",
	"sha": "シャ", "shu": "シュ", "sho": "ショ",

	"za": "ザ", "ji": "ジ", "zi": "ジ", "zu": "ズ", "ze": "ゼ", "zo": "ゾ",
	"ja": "ジャ", "ju": "ジュ", "jo": "ジョ",

	"ta": "タ", "chi": "チ", "ti": "チ", "tsu": "ツ", "tu": "ツ", "te": "テ", "to": "ト",
	"cha": "チャ", "chu": "チュ", "cho": "チョ",

	"da": "ダ", "di": "ヂ", "du": "ヅ", "de": "デ", "do": "ド",
	"dya": "ヂャ", "dyu": "ヂュ", "dyo": "ヂョ",

	"na": "ナ", "ni": "ニ", "nu": "ヌ", "ne": "ネ", "no": "ノ",
	"nya": "ニャ", "nyu": "ニュ", "nyo": "ニョ",

	"ha": "ハ", "hi": "ヒ", "fu": "フ", "hu": "フ", "he": "ヘ", "ho": "ホ",
	"hya": "ヒャ", "hyu": "ヒュ", "hyo": "ヒョ",
	"fa": "ファ", "fi": "フィ", "fe": "フェ", "fo": "フォ",

	"ba": "バ", "bi": "ビ", "bu": "ブ", "be": "ベ", "bo": "ボ",
	"bya": "ビャ", "byu": "ビュ", "byo": "ビョ",

	"pa": "パ", "pi": "ピ", "pu": "プ", "pe": "ペ", "po": "ポ",
	"pya": "ピャ", "pyu": "ピュ", "pyo": "ピョ",

	"ma": "マ", "mi": "ミ", "mu": "ム", "me": "メ", "mo": "モ",
	"mya": "ミャ", "myu": "ミュ", "myo": "ミョ",

	"ya": "ヤ", "yu": "ユ", "yo": "ヨ",

	"ra": "ラ", "ri": "リ", "ru": "ル", "re": "レ", "ro": "ロ",
	"rya": "リャ", "ryu": "リュ", "ryo": "リョ",

	"wa": "ワ", "wo": "ヲ", "wi": "ウィ", "we": "ウェ",

	"ga": "ガ", "gi": "ギ", "gu": "グ", "ge": "ゲ", "go": "ゴ",
	"gya": "ギャ", "gyu": "ギュ", "gyo": "ギョ",

	"va": "ヴァ", "vi": "ヴィ", "vu": "ヴ", "ve": "ヴェ", "vo": "ヴォ",

	"xa": "ァ", "xi": "ィ", "xu": "ゥ", "xe": "ェ", "xo": "ォ",
	"xya": "ャ", "xyu": "ュ", "xyo": "ョ", "xtu": "ッ", "ltu": "ッ",
	"la": "ァ", "li": "ィ", "lu": "ゥ", "le": "ェ", "lo": "ォ",

	"nn": "ン",
}

var katakanaZComposite = map[rune]string{
	',': "‥", '.': "…", '/': "・",
	'[': "『", ']': "』",
	'h': "←", 'j': "↓", 'k': "↑", 'l': "→",
}

// katakanaComposites covers the small-kana combinations that §4.1 singles
// out as emitting two independent Stop pairs rather than one fused glyph
// (e.g. "tsa" → ツ, ァ).
var katakanaComposites = map[string][2]string{
	"tsa": {"ツ", "ァ"}, "tsi": {"ツ", "ィ"}, "tse": {"ツ", "ェ"}, "tso": {"ツ", "ォ"},
}

var katakanaTable = &kanaTable{
	syllables:  katakanaSyllables,
	prefixes:   buildPrefixes(katakanaSyllables),
	geminate:   "ッ",
	moraicN:    "ン",
	zComposite: katakanaZComposite,
	composites: katakanaComposites,
}

func convertKatakana(pending string, input rune) ([]BufferPair, bool) {
	return katakanaTable.convert(LetterKatakana, pending, input)
}
