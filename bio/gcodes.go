package bio

// Genetic code tables from the NCBI taxonomy service
// (ftp://ftp.ncbi.nih.gov/entrez/misc/data/gc.prt). The two 64-letter
// strings are the ncbieaa (translation) and sncbieaa (start codons)
// fields in TCAG order:
//   base1 TTTTTTTTTTTTTTTTCCCCCCCCCCCCCCCCAAAAAAAAAAAAAAAAGGGGGGGGGGGGGGGG
//   base2 TTTTCCCCAAAAGGGGTTTTCCCCAAAAGGGGTTTTCCCCAAAAGGGGTTTTCCCCAAAAGGGG
//   base3 TCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAG

func init() {
	for _, gc := range []*GeneticCode{
		newGeneticCode(1, "Standard", "SGC0",
			"FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
			"---M------**--*----M---------------M----------------------------"),
		newGeneticCode(2, "Vertebrate Mitochondrial", "SGC1",
			"FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIMMTTTTNNKKSS**VVVVAAAADDEEGGGG",
			"----------**--------------------MMMM----------**---M------------"),
		newGeneticCode(3, "Yeast Mitochondrial", "SGC2",
			"FFLLSSSSYY**CCWWTTTTPPPPHHQQRRRRIIMMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
			"----------**----------------------MM---------------M------------"),
		newGeneticCode(4, "Mold Mitochondrial; Protozoan Mitochondrial; Coelenterate Mitochondrial; Mycoplasma; Spiroplasma", "SGC3",
			"FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
			"--MM------**-------M------------MMMM---------------M------------"),
		newGeneticCode(5, "Invertebrate Mitochondrial", "SGC4",
			"FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIMMTTTTNNKKSSSSVVVVAAAADDEEGGGG",
			"---M------**--------------------MMMM---------------M------------"),
		newGeneticCode(6, "Ciliate Nuclear; Dasycladacean Nuclear; Hexamita Nuclear", "SGC5",
			"FFLLSSSSYYQQCC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
			"--------------*--------------------M----------------------------"),
		newGeneticCode(9, "Echinoderm Mitochondrial; Flatworm Mitochondrial", "SGC8",
			"FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIIMTTTTNNNKSSSSVVVVAAAADDEEGGGG",
			"----------**-----------------------M---------------M------------"),
		newGeneticCode(10, "Euplotid Nuclear", "SGC9",
			"FFLLSSSSYY**CCCWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
			"----------**-----------------------M----------------------------"),
		newGeneticCode(11, "Bacterial, Archaeal and Plant Plastid", "",
			"FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
			"---M------**--*----M------------MMMM---------------M------------"),
		newGeneticCode(12, "Alternative Yeast Nuclear", "",
			"FFLLSSSSYY**CC*WLLLSPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
			"----------**--*----M---------------M----------------------------"),
		newGeneticCode(13, "Ascidian Mitochondrial", "",
			"FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIMMTTTTNNKKSSGGVVVVAAAADDEEGGGG",
			"---M------**----------------------MM---------------M------------"),
		newGeneticCode(14, "Alternative Flatworm Mitochondrial", "",
			"FFLLSSSSYYY*CCWWLLLLPPPPHHQQRRRRIIIMTTTTNNNKSSSSVVVVAAAADDEEGGGG",
			"-----------*-----------------------M----------------------------"),
		newGeneticCode(15, "Blepharisma Macronuclear", "",
			"FFLLSSSSYY*QCC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
			"----------*---*--------------------M----------------------------"),
		newGeneticCode(16, "Chlorophycean Mitochondrial", "",
			"FFLLSSSSYY*LCC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
			"----------*---*--------------------M----------------------------"),
		newGeneticCode(21, "Trematode Mitochondrial", "",
			"FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIMMTTTTNNNKSSSSVVVVAAAADDEEGGGG",
			"----------**-----------------------M---------------M------------"),
		newGeneticCode(22, "Scenedesmus obliquus Mitochondrial", "",
			"FFLLSS*SYY*LCC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
			"------*---*---*--------------------M----------------------------"),
		newGeneticCode(23, "Thraustochytrium Mitochondrial", "",
			"FF*LSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
			"--*-------**--*-----------------M--M---------------M------------"),
		newGeneticCode(24, "Rhabdopleuridae Mitochondrial", "",
			"FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSSKVVVVAAAADDEEGGGG",
			"---M------**-------M---------------M---------------M------------"),
		newGeneticCode(25, "Candidate Division SR1 and Gracilibacteria", "",
			"FFLLSSSSYY**CCGWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
			"---M------**-----------------------M---------------M------------"),
		newGeneticCode(26, "Pachysolen tannophilus Nuclear", "",
			"FFLLSSSSYY**CC*WLLLAPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
			"----------**--*----M---------------M----------------------------"),
		newGeneticCode(27, "Karyorelict Nuclear", "",
			"FFLLSSSSYYQQCCWWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
			"--------------*--------------------M----------------------------"),
		newGeneticCode(28, "Condylostoma Nuclear", "",
			"FFLLSSSSYYQQCCWWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
			"----------**--*--------------------M----------------------------"),
		newGeneticCode(29, "Mesodinium Nuclear", "",
			"FFLLSSSSYYYYCC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
			"--------------*--------------------M----------------------------"),
		newGeneticCode(30, "Peritrich Nuclear", "",
			"FFLLSSSSYYEECC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
			"--------------*--------------------M----------------------------"),
		newGeneticCode(31, "Blastocrithidia Nuclear", "",
			"FFLLSSSSYYEECCWWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
			"----------**-----------------------M----------------------------"),
		newGeneticCode(32, "Balanophoraceae Plastid", "",
			"FFLLSSSSYY*WCC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
			"---M------*---*----M------------MMMM---------------M------------"),
		newGeneticCode(33, "Cephalodiscidae Mitochondrial", "",
			"FFLLSSSSYYY*CCWWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSSKVVVVAAAADDEEGGGG",
			"---M-------*-------M---------------M---------------M------------"),
	} {
		GeneticCodes[gc.ID] = gc
	}
}
