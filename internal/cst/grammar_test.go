package cst_test

import (
	"testing"

	"github.com/mattfbacon/sneturfahi/internal/cst"
	"github.com/mattfbacon/sneturfahi/internal/lexer"
	"github.com/mattfbacon/sneturfahi/internal/selmaho"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lex(t *testing.T, input string) []lexer.Token {
	t.Helper()
	l := lexer.New(input)
	var toks []lexer.Token
	for {
		tok, ok := l.Next()
		if !ok {
			break
		}
		toks = append(toks, tok)
	}
	require.NoError(t, l.Err())
	return toks
}

func TestParseSimpleBridi(t *testing.T) {
	root, err := cst.Parse(lex(t, "mi prami do"))
	require.NoError(t, err)
	require.Len(t, root.Paragraphs, 1)
	require.Len(t, root.Paragraphs[0].Sentences, 1)

	sentence := root.Paragraphs[0].Sentences[0]
	require.Len(t, sentence.BeforeArgs, 1)
	require.NotNil(t, sentence.BeforeArgs[0].Sumti)
	require.NotNil(t, sentence.BeforeArgs[0].Sumti.Core.Koha)

	require.NotNil(t, sentence.Selbri)
	leaves := sentence.Selbri.LeafTokens()
	require.Len(t, leaves, 1)
	assert.Equal(t, selmaho.Gismu, leaves[0].Selmaho)

	require.Len(t, sentence.AfterArgs, 1)
	require.NotNil(t, sentence.AfterArgs[0].Sumti)
	require.NotNil(t, sentence.AfterArgs[0].Sumti.Core.Koha)
}

func TestParseWithCu(t *testing.T) {
	root, err := cst.Parse(lex(t, "mi cu prami"))
	require.NoError(t, err)
	sentence := root.Paragraphs[0].Sentences[0]
	require.NotNil(t, sentence.Cu)
	assert.Equal(t, selmaho.Cu, sentence.Cu.Selmaho)
}

func TestParseTwoSentences(t *testing.T) {
	root, err := cst.Parse(lex(t, "mi prami do i do prami mi"))
	require.NoError(t, err)
	require.Len(t, root.Paragraphs, 1)
	require.Len(t, root.Paragraphs[0].Sentences, 2)
}

func TestParseDescribedSumti(t *testing.T) {
	root, err := cst.Parse(lex(t, "le prami cu bajra"))
	require.NoError(t, err)
	sentence := root.Paragraphs[0].Sentences[0]
	require.Len(t, sentence.BeforeArgs, 1)
	described := sentence.BeforeArgs[0].Sumti.Core.Described
	require.NotNil(t, described)
	assert.Equal(t, selmaho.Le, described.Gadri.Selmaho)
	require.Len(t, described.Selbri.LeafTokens(), 1)
}

func TestParseCmevlaSumti(t *testing.T) {
	root, err := cst.Parse(lex(t, "la djan. cu prami"))
	require.NoError(t, err)
	sentence := root.Paragraphs[0].Sentences[0]
	require.NotEmpty(t, sentence.BeforeArgs[0].Sumti.Core.Cmevla)
}

func TestParseNaku(t *testing.T) {
	root, err := cst.Parse(lex(t, "na ku mi prami do"))
	require.NoError(t, err)
	sentence := root.Paragraphs[0].Sentences[0]
	require.Len(t, sentence.BeforeArgs, 2)
	assert.True(t, sentence.BeforeArgs[0].Naku)
}

func TestParseEmptyInputErrors(t *testing.T) {
	_, err := cst.Parse(nil)
	require.Error(t, err)
	var parseErr *cst.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, cst.Empty, parseErr.Kind)
}

func TestParseLeftoverTokensErrors(t *testing.T) {
	toks := lex(t, "mi prami do")
	toks = append(toks, lexer.Token{Selmaho: selmaho.Faho})
	_, err := cst.Parse(toks)
	require.Error(t, err)
}

// cllCorpus is a subset of the original parser's own regression corpus
// (original_source's parse/tests.rs, sections 5.1-5.13 and 6.1-6.15 of the
// CLL's selbri/sumti chapters), ported the same way that macro asserted
// them: parse and require no error, not a structural check. The full
// corpus isn't ported; excluded are sentences needing grammar this pass
// doesn't implement (forethought guhek "gu'e...gi", the full mekso
// operator/expression grammar behind "me'o" and "tu'a", vocatives
// "coi"/"doi"/"ko'o", sumti connectives "e"/"ce"/"joi"-between-sumti,
// prenex/fragment punctuation like ".i" glued to a following cmavo) and
// sentences using cmavo this pass's table doesn't carry (lai, lo'e,
// le'e, ga'a, vo'a, ma, jo, compound BY-class lerfu beyond a bare
// "by"). Bare-number/lerfu "li" sumti and "nu"/"ka"-class abstractors are
// implemented and no longer excluded; see grammar_sumti.go and
// grammar_selbri.go.
var cllCorpus = []string{
	// 5.1
	"do mamta mi",
	"do patfu mi",
	"ta bloti",
	"ta brablo",
	"ta blotrskunri",
	// 5.2
	"tu pelnimre tricu",
	"la djan barda nanla",
	"mi sutra bajra",
	"mi sutra",
	"ta klama jubme",
	"do barda prenu",
	"do cmalu prenu",
	// 5.3
	"ta cmalu nixli bo ckule",
	"ta cmalu bo nixli ckule",
	"ta cmalu nixli ckule",
	"ta klama bo jubme",
	// 5.4
	"do mutce bo barda gerku bo kavbu",
	"ta melbi cmalu nixli ckule",
	"ta melbi cmalu nixli bo ckule",
	"ta melbi cmalu bo nixli ckule",
	"ta melbi cmalu bo nixli bo ckule",
	"ta cmalu bo nixli bo ckule",
	// 5.5
	"ta ke melbi cmalu ke'e nixli ckule",
	"ta ke ke melbi cmalu ke'e nixli ke'e ckule",
	"ta ke ke ke melbi cmalu ke'e nixli ke'e ckule ke'e",
	"ta melbi ke cmalu nixli ke'e ckule",
	"ta melbi cmalu ke nixli ckule",
	"ta melbi cmalu ke nixli ckule ke'e",
	"ta melbi ke cmalu nixli ckule",
	"ta melbi ke cmalu nixli ckule ke'e",
	"ta melbi ke cmalu ke nixli ckule",
	"ta melbi ke cmalu ke nixli ckule ke'e",
	"ta melbi ke cmalu ke nixli ckule ke'e ke'e",
	"ta melbi ke cmalu nixli bo ckule",
	"ta melbi ke cmalu nixli bo ckule ke'e",
	// 5.6
	"barda xunre gerku",
	"barda xunre bo gerku",
	"barda je xunre gerku",
	"xunre je barda gerku",
	"barda je pelxu bo xunre gerku",
	"barda je ke pelxu xunre ke'e gerku",
	"barda je pelxu xunre gerku",
	"ta blanu je zdani",
	"ta melbi je nixli ckule",
	"ta ke melbi ckule ke'e je ke nixli ckule",
	"ta ke melbi ckule ke'e je ke nixli ckule ke'e",
	"le bajra cu jinga ja te jinga",
	"vajni ju pluka nuntavla",
	"ricfu je ke blanu ja crino",
	"ricfu je ke blanu ja crino ke'e",
	"ti blanu joi xunre bolci",
	"ti blanu xunre bolci",
	"ti blanu je xunre bolci",
	// 5.7
	"mi klama be le zarci bei le zdani",
	"mi klama be le zarci bei le zdani be'o",
	"mi klama le zarci le zdani",
	"melbi je cmalu nixli bo ckule",
	"ti xamgu be fi mi bei fe do zdani",
	"ti xamgu be fi mi bei fe do be'o zdani",
	"ti xamgu be fi mi zdani",
	"ti xamgu be fi mi be'o zdani",
	"le xamgu be do noi barda cu zdani",
	"le xamgu be do be'o noi barda cu zdani",
	"le xamgu be le ctuca be'o zdani",
	"le xamgu be le ctuca ku be'o zdani",
	// 5.8
	"ta blanu zdani",
	"ta zdani co blanu",
	"mi klama be le zarci bei le zdani be'o troci",
	"mi troci co klama le zarci le zdani",
	"ta nixli ckule co cmalu",
	"ta nixli bo ckule co cmalu",
	"ta cmalu ke nixli ckule co melbi",
	"ta cmalu ke nixli ckule ke'e co melbi",
	"ckule co melbi nixli",
	"ke melbi nixli ke'e ckule",
	"ckule co nixli co cmalu",
	"ke ke cmalu ke'e nixli ke'e ckule",
	"cmalu nixli ckule",
	"mi klama co sutra",
	"mi klama be le zarci be'o co sutra",
	// 5.9
	"la djan klama le zarci",
	"la djan go'i troci",
	"la djan klama be le zarci be'o traci",
	"ti zdile kumfa",
	// 5.10
	"le ci nolraitru",
	// 5.11
	"mi prami do",
	"do se prami mi",
	"la alis cu cadzu klama le zarci",
	"le zarci cu se ke cadzu klama ke'e la alis",
	"le zarci cu se cadzu klama la alis",
	"le zarci cu cadzu se klama la alis",
	"la djan cu cadzu se klama la alis",
	// 5.12
	"la alis cu na'e ke cadzu klama le zarci",
	"la alis cu na'e ke cadzu klama ke'e le zarci",
	"la alis cu na'e cadzu klama le zarci",
	"la djonz cu na'e pamoi cusku",
	"mi na'e sutra bo cadzu be fi le birka be'o klama le zarci",
	"mi na'e ke sutra cadzu be fi le birka ke'e klama le zarci",
	"mi na'e ke sutra cadzu be fi le birka be'o ke'e klama le zarci",
	"mi sutra bo cadzu be fi le birka be'o je masno klama le zarci",
	"mi ke sutra cadzu be fi le birka ke'e je masno klama le zarci",
	"mi ke sutra cadzu be fi le birka be'o ke'e je masno klama le zarci",
	"mi na'e ke sutra bo cadzu be fi le birka be'o je masno klama le zarci",
	"mi na'e ke sutra bo cadzu be fi le birka be'o je masno klama ke'e le zarci",
	"mi na'e ke sutra bo cadzu be fi le birka je masno klama le zarci",
	"mi na'e ke sutra bo cadzu be fi le birka je masno klama be'o le zarci",
	"mi na'e ke sutra bo cadzu be fi le birka je masno klama ke'e le zarci",
	"mi na'e ke sutra bo cadzu be fi le birka je masno klama be'o ke'e le zarci",
	// 5.13
	"mi pu klama le zarci",
	"la djonz na pamoi cusku",
	"mi na pu klama le zarci",
	"mi na na klama le zarci",
	"mi na pu na ca klama le zarci",
	// 6.2
	"le zarci",
	"le zarci cu barda",
	"le nanmu cu ninmu",
	"lo zarci",
	"lo nanmu cu ninmu",
	"la cribe pu finti le lisri",
	"la stace pu citka lo cirla",
	"lo cribe pu finti le lisri",
	"le remna pu finti le lisri",
	"lo remna pu finti le lisri",
	// 6.3
	"le prenu cu bevri le pipno",
	"lei prenu cu bevri le pipno",
	"loi cinfo cu xabju le fi'ortu'a",
	"loi glipre cu xabju le fi'ortu'a",
	"loi matne cu ranti",
	// 6.4
	"lo ratcu cu bunre",
	"loi ratcu cu cmalu",
	"lo'i ratcu cu barda",
	"mi fadni zo'e lo'i lobypli",
	// 6.6
	"do cadzu le bisli",
	"re do cadzu le bisli",
	"mi ponse su'o ci cutci",
	"ro do cadzu le bisli",
	"mi cusku lu do cadzu le bisli li'u",
	"mi cusku ro lu do cadzu le bisli li'u",
	"mi cusku su'o lu do cadzu le bisli li'u",
	"mi cusku re lu do cadzu le bisli li'u",
	"re le gerku cu blabi",
	"re le ci gerku cu blabi",
	"le ci gerku cu blabi",
	"ro le ci gerku cu blabi",
	"ci lo gerku cu blabi",
	"ci lo ro gerku cu blabi",
	"so'o lo ci gerku cu blabi",
	// 6.8
	"ci gerku cu blabi",
	"ci gerku ku cu blabi",
	"mi ponse su'o ci lo cutci",
	// 6.9
	"re do cu nanmu",
	"le re do cu nanmu",
	"re le ci cribe cu bunre",
	"le re le ci cribe cu bunre",
	"pa le re le ci cribe cu bunre",
	// 6.10
	"mi viska lu le xunre cmaxirma li'u",
	"mi viska le selsinxa be lu le xunre cmaxirma li'u",
	"mi viska la'e lu le xunre cmaxirma li'u",
	"mi viska la'e lu le xunre cmaxirma li'u lu'u",
	"mi viska na'e bo le gerku",
	// 6.12
	"la djonz klama le zarci",
	// 6.13
	"mi klama la frankfurt ri",
	"mi klama la frankfurt zo'e zo'e zo'e",
	"ko muvgau ti ta tu",
	"mi viska le mlatu ku poi zo'e zbasu ke'a loi slasi",
	// 6.14
	"mi cusku lo'u li mi le'u",
	"mi cusku zo ai",
	"mi cusku zoi kuot I'm John kuot",
	// me/nu/nuha/li/vu'o leaf forms
	"ti me la djan",
	"ti me la djan me'u",
	"ti nu mi klama kei",
	"ti nu mi klama",
	"ti nu mi nu klama kei sutra kei",
	"ti nu'a su'i",
	"li pa",
	"mi viska le gerku poi blabi vu'o noi xekri",
}

func TestParseCLLCorpus(t *testing.T) {
	for _, sentence := range cllCorpus {
		t.Run(sentence, func(t *testing.T) {
			_, err := cst.Parse(lex(t, sentence))
			assert.NoError(t, err)
		})
	}
}

func TestParseTenseTagPrefix(t *testing.T) {
	root, err := cst.Parse(lex(t, "mi pu ca ba klama le zarci"))
	require.NoError(t, err)
	sentence := root.Paragraphs[0].Sentences[0]
	require.Len(t, sentence.Prefixes, 1)
	tag := sentence.Prefixes[0].Tag
	require.NotNil(t, tag)
	require.NotNil(t, tag.Time)
	assert.Len(t, tag.Time.Offsets, 3)
}

func TestParseSpaceTagPrefix(t *testing.T) {
	root, err := cst.Parse(lex(t, "mi vi klama le zarci"))
	require.NoError(t, err)
	sentence := root.Paragraphs[0].Sentences[0]
	require.Len(t, sentence.Prefixes, 1)
	tag := sentence.Prefixes[0].Tag
	require.NotNil(t, tag)
	require.NotNil(t, tag.Space)
	assert.Len(t, tag.Space.Offsets, 1)
}

func TestParseBaiArgTag(t *testing.T) {
	root, err := cst.Parse(lex(t, "mi klama le zarci bai mi"))
	require.NoError(t, err)
	sentence := root.Paragraphs[0].Sentences[0]
	require.Len(t, sentence.AfterArgs, 2)
	tag := sentence.AfterArgs[1].Tag
	require.NotNil(t, tag)
	require.NotNil(t, tag.Bai)
	assert.Equal(t, selmaho.Bai, tag.Bai.Word.Selmaho)
}

func TestParseMeConversion(t *testing.T) {
	root, err := cst.Parse(lex(t, "ti me la djan me'u"))
	require.NoError(t, err)
	sentence := root.Paragraphs[0].Sentences[0]
	me := sentence.Selbri.LeafTokens()
	require.NotEmpty(t, me)
	assert.Equal(t, selmaho.Me, me[0].Selmaho)
}

func TestParseNuAbstraction(t *testing.T) {
	root, err := cst.Parse(lex(t, "ti nu mi klama kei"))
	require.NoError(t, err)
	sentence := root.Paragraphs[0].Sentences[0]
	leaves := sentence.Selbri.LeafTokens()
	require.Len(t, leaves, 1)
	assert.Equal(t, selmaho.Nu, leaves[0].Selmaho)
}

func TestParseNuhaConversion(t *testing.T) {
	root, err := cst.Parse(lex(t, "ti nu'a su'i"))
	require.NoError(t, err)
	sentence := root.Paragraphs[0].Sentences[0]
	leaves := sentence.Selbri.LeafTokens()
	require.Len(t, leaves, 2)
	assert.Equal(t, selmaho.Nuha, leaves[0].Selmaho)
	assert.Equal(t, selmaho.Vuhu, leaves[1].Selmaho)
}

func TestParseLiSumti(t *testing.T) {
	root, err := cst.Parse(lex(t, "li pa"))
	require.NoError(t, err)
	sentence := root.Paragraphs[0].Sentences[0]
	require.Len(t, sentence.BeforeArgs, 1)
	li := sentence.BeforeArgs[0].Sumti.Core.Li
	require.NotNil(t, li)
	require.NotNil(t, li.Operand.Number)
	assert.Equal(t, selmaho.Pa, li.Operand.Number.First.Selmaho)
}

func TestParseVuhoRelative(t *testing.T) {
	root, err := cst.Parse(lex(t, "mi viska le gerku poi blabi vu'o noi xekri"))
	require.NoError(t, err)
	sentence := root.Paragraphs[0].Sentences[0]
	require.Len(t, sentence.AfterArgs, 1)
	sumti := sentence.AfterArgs[0].Sumti
	require.NotNil(t, sumti.Relative)
	require.NotNil(t, sumti.VuhoRelative)
	assert.Equal(t, selmaho.Vuho, sumti.VuhoRelative.Vuho.Selmaho)
	require.Len(t, sumti.VuhoRelative.Relatives.Clauses, 1)
	require.NotNil(t, sumti.VuhoRelative.Relatives.Clauses[0].Noi)
}

func TestParseBuLerfuSumti(t *testing.T) {
	root, err := cst.Parse(lex(t, "mi tavla a bu"))
	require.NoError(t, err)
	sentence := root.Paragraphs[0].Sentences[0]
	require.Len(t, sentence.AfterArgs, 1)
	lerfu := sentence.AfterArgs[0].Sumti.Core.Lerfu
	require.NotNil(t, lerfu)
	require.NotNil(t, lerfu.First.Lerfu.Bu)
	assert.Len(t, lerfu.First.Lerfu.Bu.Bus, 1)
}
