package jedec

// vendors is ordered by bank, then by position within the bank. ID values
// include the parity bit.
var vendors = []Vendor{
	// Bank 1
	{0, 0x01, "AMD"},
	{0, 0x02, "AMI"},
	{0, 0x83, "Fairchild"},
	{0, 0x04, "Fujitsu"},
	{0, 0x85, "GTE"},
	{0, 0x86, "Harris"},
	{0, 0x07, "Hitachi"},
	{0, 0x08, "Inmos"},
	{0, 0x89, "Intel"},
	{0, 0x8A, "I.T.T."},
	{0, 0x0B, "Intersil"},
	{0, 0x8C, "Monolithic Memories"},
	{0, 0x0D, "Mostek"},
	{0, 0x0E, "Freescale (Motorola)"},
	{0, 0x8F, "National"},
	{0, 0x10, "NEC"},
	{0, 0x91, "RCA"},
	{0, 0x92, "Raytheon"},
	{0, 0x13, "Conexant (Rockwell)"},
	{0, 0x94, "Seeq"},
	{0, 0x15, "NXP (Philips)"},
	{0, 0x16, "Synertek"},
	{0, 0x97, "Texas Instruments"},
	{0, 0x98, "Kioxia (Toshiba)"},
	{0, 0x19, "Xicor"},
	{0, 0x1A, "Zilog"},
	{0, 0x9B, "Eurotechnique"},
	{0, 0x1C, "Mitsubishi"},
	{0, 0x9D, "Lucent (AT&T)"},
	{0, 0x9E, "Exel"},
	{0, 0x1F, "Atmel"},
	{0, 0x20, "STMicroelectronics"},
	{0, 0xA1, "Lattice Semi."},
	{0, 0xA2, "NCR"},
	{0, 0x23, "Wafer Scale Integration"},
	{0, 0xA4, "IBM"},
	{0, 0x25, "Tristar"},
	{0, 0x26, "Visic"},
	{0, 0xA7, "Intl. CMOS Technology"},
	{0, 0xA8, "SSSI"},
	{0, 0x29, "Microchip Technology"},
	{0, 0x2A, "Ricoh Ltd"},
	{0, 0xAB, "VLSI"},
	{0, 0x2C, "Micron Technology"},
	{0, 0xAD, "SK Hynix"},
	{0, 0xAE, "OKI Semiconductor"},
	{0, 0x2F, "ACTEL"},
	{0, 0xB0, "Sharp"},
	{0, 0x31, "Catalyst"},
	{0, 0x32, "Panasonic"},
	{0, 0xB3, "IDT"},
	{0, 0x34, "Cypress"},
	{0, 0xB5, "DEC"},
	{0, 0xB6, "LSI Logic"},
	{0, 0x37, "Zarlink (Plessey)"},
	{0, 0x38, "UTMC"},
	{0, 0xB9, "Thinking Machine"},
	{0, 0xBA, "Thomson CSF"},
	{0, 0x3B, "Integrated CMOS (Vertex)"},
	{0, 0xBC, "Honeywell"},
	{0, 0x3D, "Tektronix"},
	{0, 0x3E, "Oracle Corporation"},
	{0, 0xBF, "Silicon Storage Technology"},
	{0, 0x40, "ProMos/Mosel Vitelic"},
	{0, 0xC1, "Infineon (Siemens)"},
	{0, 0xC2, "Macronix"},
	{0, 0x43, "Xerox"},
	{0, 0xC4, "Plus Logic"},
	{0, 0x45, "Western Digital Technologies (SanDisk)"},
	{0, 0x46, "Elan Circuit Tech."},
	{0, 0xC7, "European Silicon Str."},
	{0, 0xC8, "Apple Computer"},
	{0, 0x49, "Xilinx"},
	{0, 0x4A, "Compaq"},
	{0, 0xCB, "Protocol Engines"},
	{0, 0x4C, "SCI"},
	{0, 0xCD, "Seiko Instruments"},
	{0, 0xCE, "Samsung"},
	{0, 0x4F, "I3 Design System"},
	{0, 0xD0, "Klic"},
	{0, 0x51, "Crosspoint Solutions"},
	{0, 0x52, "Alliance Semiconductor"},
	{0, 0xD3, "Tandem"},
	{0, 0x54, "Hewlett-Packard"},
	{0, 0xD5, "Integrated Silicon Solutions"},
	{0, 0xD6, "Brooktree"},
	{0, 0x57, "New Media"},
	{0, 0x58, "MHS Electronic"},
	{0, 0xD9, "Performance Semi."},
	{0, 0xDA, "Winbond Electronic"},
	{0, 0x5B, "Kawasaki Steel"},
	{0, 0xDC, "Bright Micro"},
	{0, 0x5D, "TECMAR"},
	{0, 0x5E, "Exar"},
	{0, 0xDF, "PCMCIA"},
	{0, 0xE0, "LG Semi (Goldstar)"},
	{0, 0x61, "Northern Telecom"},
	{0, 0x62, "Sanyo"},
	{0, 0xE3, "Array Microsystems"},
	{0, 0x64, "Crystal Semiconductor"},
	{0, 0xE5, "Analog Devices"},
	{0, 0xE6, "PMC-Sierra"},
	{0, 0x67, "Asparix"},
	{0, 0x68, "Convex Computer"},
	{0, 0xE9, "Quality Semiconductor"},
	{0, 0xEA, "Nimbus Technology"},
	{0, 0x6B, "Transwitch"},
	{0, 0xEC, "Micronas (ITT Intermetall)"},
	{0, 0x6D, "Cannon"},
	{0, 0x6E, "Altera"},
	{0, 0xEF, "NEXCOM"},
	{0, 0x70, "Qualcomm"},
	{0, 0xF1, "Sony"},
	{0, 0xF2, "Cray Research"},
	{0, 0x73, "AMS (Austria Micro)"},
	{0, 0xF4, "Vitesse"},
	{0, 0x75, "Aster Electronics"},
	{0, 0x76, "Bay Networks (Synoptic)"},
	{0, 0xF7, "Zentrum/ZMD"},
	{0, 0xF8, "TRW"},
	{0, 0x79, "Thesys"},
	{0, 0x7A, "Solbourne Computer"},
	{0, 0xFB, "Allied-Signal"},
	{0, 0x7C, "Dialog Semiconductor"},
	{0, 0xFD, "Media Vision"},
	{0, 0xFE, "Numonyx Corporation"},

	// Bank 2
	{1, 0x01, "Cirrus Logic"},
	{1, 0x02, "National Instruments"},
	{1, 0x83, "ILC Data Device"},
	{1, 0x04, "Alcatel Mietec"},
	{1, 0x85, "Micro Linear"},
	{1, 0x86, "Univ. of NC"},
	{1, 0x07, "JTAG Technologies"},
	{1, 0x08, "BAE Systems (Loral)"},
	{1, 0x89, "Nchip"},
	{1, 0x8A, "Galileo Tech"},
	{1, 0x0B, "Bestlink Systems"},
	{1, 0x8C, "Graychip"},
	{1, 0x0D, "GENNUM"},
	{1, 0x0E, "Imagination Technologies"},
	{1, 0x8F, "Robert Bosch"},
	{1, 0x10, "Chip Express"},
	{1, 0x91, "DATARAM"},
	{1, 0x92, "United Microelectronics Corp"},
	{1, 0x13, "TCSI"},
	{1, 0x94, "Smart Modular"},
	{1, 0x15, "Hughes Aircraft"},
	{1, 0x16, "Lanstar Semiconductor"},
	{1, 0x97, "Qlogic"},
	{1, 0x98, "Kingston"},
	{1, 0x19, "Music Semi"},
	{1, 0x1A, "Ericsson Components"},
	{1, 0x9B, "SpaSE"},
	{1, 0x1C, "Eon Silicon Devices"},
	{1, 0x9D, "Programmable Micro Corp"},
	{1, 0x9E, "DoD"},
	{1, 0x1F, "Integ. Memories Tech."},
	{1, 0x20, "Corollary Inc"},
	{1, 0xA1, "Dallas Semiconductor"},
	{1, 0xA2, "Omnivision"},
	{1, 0x23, "EIV (Switzerland)"},
	{1, 0xA4, "Novatel Wireless"},
	{1, 0x25, "Zarlink (Mitel)"},
	{1, 0x26, "Clearpoint"},
	{1, 0xA7, "Cabletron"},
	{1, 0xA8, "STEC (Silicon Tech)"},
	{1, 0x29, "Vanguard"},
	{1, 0x2A, "Hagiwara Sys-Com"},
	{1, 0xAB, "Vantis"},
	{1, 0x2C, "Celestica"},
	{1, 0xAD, "Century"},
	{1, 0xAE, "Hal Computers"},
	{1, 0x2F, "Rohm Company Ltd"},
	{1, 0xB0, "Juniper Networks"},
	{1, 0x31, "Libit Signal Processing"},
	{1, 0x32, "Mushkin Enhanced Memory"},
	{1, 0xB3, "Tundra Semiconductor"},
	{1, 0x34, "Adaptec Inc"},
	{1, 0xB5, "LightSpeed Semi."},
	{1, 0xB6, "ZSP Corp"},
	{1, 0x37, "AMIC Technology"},
	{1, 0x38, "Adobe Systems"},
	{1, 0xB9, "Dynachip"},
	{1, 0xBA, "PNY Technologies"},
	{1, 0x3B, "Newport Digital"},
	{1, 0xBC, "MMC Networks"},
	{1, 0x3D, "T Square"},
	{1, 0x3E, "Seiko Epson"},
	{1, 0xBF, "Broadcom"},
	{1, 0x40, "Viking Components"},
	{1, 0xC1, "V3 Semiconductor"},
	{1, 0xC2, "Flextronics (Orbit Semiconductor)"},
	{1, 0x43, "Suwa Electronics"},
	{1, 0xC4, "Transmeta"},
	{1, 0x45, "Micron CMS"},
	{1, 0x46, "American Computer & Digital Components"},
	{1, 0xC7, "Enhance 3000 Inc"},
	{1, 0xC8, "Tower Semiconductor"},
	{1, 0x49, "CPU Design"},
	{1, 0x4A, "Price Point"},
	{1, 0xCB, "Maxim Integrated Product"},
	{1, 0x4C, "Tellabs"},
	{1, 0xCD, "Centaur Technology"},
	{1, 0xCE, "Unigen Corporation"},
	{1, 0x4F, "Transcend Information"},
	{1, 0xD0, "Memory Card Technology"},
	{1, 0x51, "CKD Corporation Ltd"},
	{1, 0x52, "Capital Instruments Inc"},
	{1, 0xD3, "Aica Kogyo Ltd"},
	{1, 0x54, "Linvex Technology"},
	{1, 0xD5, "MSC Vertriebs GmbH"},
	{1, 0xD6, "AKM Company Ltd"},
	{1, 0x57, "Dynamem Inc"},
	{1, 0x58, "NERA ASA"},
	{1, 0xD9, "GSI Technology"},
	{1, 0xDA, "Dane-Elec (C Memory)"},
	{1, 0x5B, "Acorn Computers"},
	{1, 0xDC, "Lara Technology"},
	{1, 0x5D, "Oak Technology Inc"},
	{1, 0x5E, "Itec Memory"},
	{1, 0xDF, "Tanisys Technology"},
	{1, 0xE0, "Truevision"},
	{1, 0x61, "Wintec Industries"},
	{1, 0x62, "Super PC Memory"},
	{1, 0xE3, "MGV Memory"},
	{1, 0x64, "Galvantech"},
	{1, 0xE5, "Gadzoox Networks"},
	{1, 0xE6, "Multi Dimensional Cons."},
	{1, 0x67, "GateField"},
	{1, 0x68, "Integrated Memory System"},
	{1, 0xE9, "Triscend"},
	{1, 0xEA, "XaQti"},
	{1, 0x6B, "Goldenram"},
	{1, 0xEC, "Clear Logic"},
	{1, 0x6D, "Cimaron Communications"},
	{1, 0x6E, "Nippon Steel Semi. Corp"},
	{1, 0xEF, "Advantage Memory"},
	{1, 0x70, "AMCC"},
	{1, 0xF1, "LeCroy"},
	{1, 0xF2, "Yamaha Corporation"},
	{1, 0x73, "Digital Microwave"},
	{1, 0xF4, "NetLogic Microsystems"},
	{1, 0x75, "MIMOS Semiconductor"},
	{1, 0x76, "Advanced Fibre"},
	{1, 0xF7, "BF Goodrich Data."},
	{1, 0xF8, "Epigram"},
	{1, 0x79, "Acbel Polytech Inc"},
	{1, 0x7A, "Apacer Technology"},
	{1, 0xFB, "Admor Memory"},
	{1, 0x7C, "FOXCONN"},
	{1, 0xFD, "Quadratics Superconductor"},
	{1, 0xFE, "3COM"},

	// Bank 3
	{2, 0x01, "Camintonn Corporation"},
	{2, 0x02, "ISOA Incorporated"},
	{2, 0x83, "Agate Semiconductor"},
	{2, 0x04, "ADMtek Incorporated"},
	{2, 0x85, "HYPERTEC"},
	{2, 0x86, "Adhoc Technologies"},
	{2, 0x07, "MOSAID Technologies"},
	{2, 0x08, "Ardent Technologies"},
	{2, 0x89, "Switchcore"},
	{2, 0x8A, "Cisco Systems Inc"},
	{2, 0x0B, "Allayer Technologies"},
	{2, 0x8C, "WorkX AG (Wichman)"},
	{2, 0x0D, "Oasis Semiconductor"},
	{2, 0x0E, "Novanet Semiconductor"},
	{2, 0x8F, "E-M Solutions"},
	{2, 0x10, "Power General"},
	{2, 0x91, "Advanced Hardware Arch."},
	{2, 0x92, "Inova Semiconductors GmbH"},
	{2, 0x13, "Telocity"},
	{2, 0x94, "Delkin Devices"},
	{2, 0x15, "Symagery Microsystems"},
	{2, 0x16, "C-Port Corporation"},
	{2, 0x97, "SiberCore Technologies"},
	{2, 0x98, "Southland Microsystems"},
	{2, 0x19, "Malleable Technologies"},
	{2, 0x1A, "Kendin Communications"},
	{2, 0x9B, "Great Technology Microcomputer"},
	{2, 0x1C, "Sanmina Corporation"},
	{2, 0x9D, "HADCO Corporation"},
	{2, 0x9E, "Corsair"},
	{2, 0x1F, "Actrans System Inc"},
	{2, 0x20, "ALPHA Technologies"},
	{2, 0xA1, "Silicon Laboratories Inc (Cygnal)"},
	{2, 0xA2, "Artesyn Technologies"},
	{2, 0x23, "Align Manufacturing"},
	{2, 0xA4, "Peregrine Semiconductor"},
	{2, 0x25, "Chameleon Systems"},
	{2, 0x26, "Aplus Flash Technology"},
	{2, 0xA7, "MIPS Technologies"},
	{2, 0xA8, "Chrysalis ITS"},
	{2, 0x29, "ADTEC Corporation"},
	{2, 0x2A, "Kentron Technologies"},
	{2, 0xAB, "Win Technologies"},
	{2, 0x2C, "Tachyon Semiconductor (ASIC Designs)"},
	{2, 0xAD, "Extreme Packet Devices"},
	{2, 0xAE, "RF Micro Devices"},
	{2, 0x2F, "Siemens AG"},
	{2, 0xB0, "Sarnoff Corporation"},
	{2, 0x31, "Itautec SA"},
	{2, 0x32, "Radiata Inc"},
	{2, 0xB3, "Benchmark Elect. (AVEX)"},
	{2, 0x34, "Legend"},
	{2, 0xB5, "SpecTek Incorporated"},
	{2, 0xB6, "Hi/fn"},
	{2, 0x37, "Enikia Incorporated"},
	{2, 0x38, "SwitchOn Networks"},
	{2, 0xB9, "AANetcom Incorporated"},
	{2, 0xBA, "Micro Memory Bank"},
	{2, 0x3B, "ESS Technology"},
	{2, 0xBC, "Virata Corporation"},
	{2, 0x3D, "Excess Bandwidth"},
	{2, 0x3E, "West Bay Semiconductor"},
	{2, 0xBF, "DSP Group"},
	{2, 0x40, "Newport Communications"},
	{2, 0xC1, "Chip2Chip Incorporated"},
	{2, 0xC2, "Phobos Corporation"},
	{2, 0x43, "Intellitech Corporation"},
	{2, 0xC4, "Nordic VLSI ASA"},
	{2, 0x45, "Ishoni Networks"},
	{2, 0x46, "Silicon Spice"},
	{2, 0xC7, "Alchemy Semiconductor"},
	{2, 0xC8, "Agilent Technologies"},
	{2, 0x49, "Centillium Communications"},
	{2, 0x4A, "W.L. Gore"},
	{2, 0xCB, "HanBit Electronics"},
	{2, 0x4C, "GlobeSpan"},
	{2, 0xCD, "Element 14"},
	{2, 0xCE, "Pycon"},
	{2, 0x4F, "Saifun Semiconductors"},
	{2, 0xD0, "Sibyte Incorporated"},
	{2, 0x51, "MetaLink Technologies"},
	{2, 0x52, "Feiya Technology"},
	{2, 0xD3, "I & C Technology"},
	{2, 0x54, "Shikatronics"},
	{2, 0xD5, "Elektrobit"},
	{2, 0xD6, "Megic"},
	{2, 0x57, "Com-Tier"},
	{2, 0x58, "Malaysia Micro Solutions"},
	{2, 0xD9, "Hyperchip"},
	{2, 0xDA, "Gemstone Communications"},
	{2, 0x5B, "Anadigm (Anadyne)"},
	{2, 0xDC, "3ParData"},
	{2, 0x5D, "Mellanox Technologies"},
	{2, 0x5E, "Tenx Technologies"},
	{2, 0xDF, "Helix AG"},
	{2, 0xE0, "Domosys"},
	{2, 0x61, "Skyup Technology"},
	{2, 0x62, "HiNT Corporation"},
	{2, 0xE3, "Chiaro"},
	{2, 0x64, "MDT Technologies GmbH"},
	{2, 0xE5, "Exbit Technology A/S"},
	{2, 0xE6, "Integrated Technology Express"},
	{2, 0x67, "AVED Memory"},
	{2, 0x68, "Legerity"},
	{2, 0xE9, "Jasmine Networks"},
	{2, 0xEA, "Caspian Networks"},
	{2, 0x6B, "nCUBE"},
	{2, 0xEC, "Silicon Access Networks"},
	{2, 0x6D, "FDK Corporation"},
	{2, 0x6E, "High Bandwidth Access"},
	{2, 0xEF, "MultiLink Technology"},
	{2, 0x70, "BRECIS"},
	{2, 0xF1, "World Wide Packets"},
	{2, 0xF2, "APW"},
	{2, 0x73, "Chicory Systems"},
	{2, 0xF4, "Xstream Logic"},
	{2, 0x75, "Fast-Chip"},
	{2, 0x76, "Zucotto Wireless"},
	{2, 0xF7, "Realchip"},
	{2, 0xF8, "Galaxy Power"},
	{2, 0x79, "eSilicon"},
	{2, 0x7A, "Morphics Technology"},
	{2, 0xFB, "Accelerant Networks"},
	{2, 0x7C, "Silicon Wave"},
	{2, 0xFD, "SandCraft"},
	{2, 0xFE, "Elpida"},

	// Bank 4
	{3, 0x01, "Solectron"},
	{3, 0x02, "Optosys Technologies"},
	{3, 0x83, "Buffalo (Melco)"},
	{3, 0x04, "TriMedia Technologies"},
	{3, 0x85, "Cyan Technologies"},
	{3, 0x86, "Global Locate"},
	{3, 0x07, "Optillion"},
	{3, 0x08, "Terago Communications"},
	{3, 0x89, "Ikanos Communications"},
	{3, 0x8A, "Princeton Technology"},
	{3, 0x0B, "Nanya Technology"},
	{3, 0x8C, "Elite Flash Storage"},
	{3, 0x0D, "Mysticom"},
	{3, 0x0E, "LightSand Communications"},
	{3, 0x8F, "ATI Technologies"},
	{3, 0x10, "Agere Systems"},
	{3, 0x91, "NeoMagic"},
	{3, 0x92, "AuroraNetics"},
	{3, 0x13, "Golden Empire"},
	{3, 0x94, "Mushkin"},
	{3, 0x15, "Tioga Technologies"},
	{3, 0x16, "Netlist"},
	{3, 0x97, "TeleLight"},
	{3, 0x25, "Kingmax Semiconductor"},

	// Bank 5
	{4, 0x01, "MOVEKING"},
	{4, 0x43, "Ramaxel Technology"},
	{4, 0x57, "AENEON"},
	{4, 0xB0, "OCZ"},
	{4, 0xCB, "A-DATA Technology"},
	{4, 0xCD, "G.Skill Intl"},
	{4, 0xEF, "Team Group Inc"},

	// Bank 6
	{5, 0x02, "Patriot Memory"},
	{5, 0x9B, "Crucial Technology"},
	{5, 0x51, "Qimonda"},

	// Bank 7
	{6, 0x32, "Montage Technology Group"},
	{6, 0xF1, "Innodisk Corporation"},

	// Bank 11
	{10, 0x91, "ChangXin Memory Technologies"},
}
