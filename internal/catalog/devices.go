package catalog

// Android device model identifiers as they appear in Chrome UA strings.
// Opaque strings as far as the generator is concerned; the assembler only
// ever draws one at random.

var SmartphoneDevices = []string{
	"GT-I9300",
	"GT-I9505",
	"GT-N7100",
	"HTC One",
	"HTC One_M8",
	"HUAWEI VNS-L31",
	"LG-D802",
	"LG-D855",
	"LG-H815",
	"LG-H850",
	"Moto G (4)",
	"Moto G (5)",
	"Nexus 4",
	"Nexus 5",
	"Nexus 5X",
	"Nexus 6",
	"Nexus 6P",
	"ONEPLUS A3003",
	"ONEPLUS A5000",
	"ONEPLUS A6003",
	"Pixel",
	"Pixel 2",
	"Pixel 2 XL",
	"Pixel 3",
	"Pixel 3a",
	"Pixel 4",
	"Pixel 4a",
	"Pixel 5",
	"Redmi Note 4",
	"Redmi Note 7",
	"Redmi Note 8 Pro",
	"SM-A310F",
	"SM-A510F",
	"SM-A520F",
	"SM-G900F",
	"SM-G900P",
	"SM-G920F",
	"SM-G925F",
	"SM-G930F",
	"SM-G935F",
	"SM-G950F",
	"SM-G955F",
	"SM-G960F",
	"SM-G965F",
	"SM-G970F",
	"SM-G973F",
	"SM-G975F",
	"SM-J330F",
	"SM-J530F",
	"SM-J730F",
	"SM-N910C",
	"SM-N950F",
	"SM-N960F",
	"SM-N975F",
	"vivo 1716",
	"vivo 1723",
	"Mi A1",
	"Mi A2",
	"Mi 9T",
	"POCOPHONE F1",
}

var TabletDevices = []string{
	"KFAUWI",
	"KFDOWI",
	"KFGIWI",
	"KFKAWI",
	"KFMUWI",
	"KFONWI",
	"KFSUWI",
	"Lenovo TB-8505F",
	"Lenovo TB-X505F",
	"Lenovo TB-X606F",
	"Nexus 7",
	"Nexus 9",
	"Nexus 10",
	"Pixel C",
	"SM-P600",
	"SM-T230NU",
	"SM-T350",
	"SM-T510",
	"SM-T550",
	"SM-T580",
	"SM-T710",
	"SM-T810",
	"SM-T820",
	"SM-T830",
	"SM-T860",
	"SHIELD Tablet K1",
}
