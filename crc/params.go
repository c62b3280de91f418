package crc

// Params describes one member of the CRC-8 family. Poly is the generator
// polynomial in normal (MSB-first) form. Algorithms with Reflect set process
// bits LSB-first on both input and output; every catalogued algorithm
// reflects both sides or neither.
type Params struct {
	Name    string
	Poly    uint8
	Init    uint8
	XorOut  uint8
	Reflect bool
	Uses    string
}

// Catalogued CRC-8 parametrizations.
var (
	CRC8AutosarF   = Params{Name: "crc8_8h2f", Poly: 0x2F, Init: 0xFF, XorOut: 0xFF, Uses: "Autosar"}
	CRC8Bluetooth  = Params{Name: "crc8_bluetooth", Poly: 0xA7, Reflect: true, Uses: "Bluetooth header error correction"}
	CRC8CDMA2000   = Params{Name: "crc8_cdma2000", Poly: 0x9B, Init: 0xFF, Uses: "mobile networks"}
	CRC8DARC       = Params{Name: "crc8_darc", Poly: 0x39, Reflect: true, Uses: "Data Radio Channel"}
	CRC8DVBS2      = Params{Name: "crc8_dvb_s2", Poly: 0xD5, Uses: "DVB-S2"}
	CRC8EBU        = Params{Name: "crc8_ebu", Poly: 0x1D, Init: 0xFF, Reflect: true, Uses: "AES/EBU digital audio interface"}
	CRC8GSMA       = Params{Name: "crc8_gsm_a", Poly: 0x1D, Uses: "mobile networks"}
	CRC8GSMB       = Params{Name: "crc8_gsm_b", Poly: 0x49, XorOut: 0xFF, Uses: "mobile networks"}
	CRC8Hitag      = Params{Name: "crc8_hitag", Poly: 0x1D, Init: 0xFF, Uses: "RFID applications"}
	CRC8ICode      = Params{Name: "crc8_icode", Poly: 0x1D, Init: 0xFD, Uses: "I-CODE RFID labels"}
	CRC8ITU        = Params{Name: "crc8_itu", Poly: 0x07, XorOut: 0x55, Uses: "ATM Header Error Control sequence"}
	CRC8LTE        = Params{Name: "crc8_lte", Poly: 0x9B, Uses: "mobile networks"}
	CRC8Maxim      = Params{Name: "crc8_maxim", Poly: 0x31, Reflect: true, Uses: "1-Wire bus"}
	CRC8Mifare     = Params{Name: "crc8_mifare", Poly: 0x1D, Init: 0xC7, Uses: "NFC Mifare cards"}
	CRC8NRSC5      = Params{Name: "crc8_nrsc_5", Poly: 0x31, Init: 0xFF, Uses: "Audio Transport in NRSC-5 digital radio"}
	CRC8OpenSafety = Params{Name: "crc8_opensafety", Poly: 0x2F, Uses: "openSAFETY"}
	CRC8ROHC       = Params{Name: "crc8_rohc", Poly: 0x07, Init: 0xFF, Reflect: true, Uses: "Robust Header Compression for RTP/UDP/IP"}
	CRC8SAEJ1850   = Params{Name: "crc8_sae_j1850", Poly: 0x1D, Init: 0xFF, XorOut: 0xFF, Uses: "AES3; OBD"}
	CRC8SAEJ1850Z  = Params{Name: "crc8_sae_j1850_0", Poly: 0x1D, Uses: "AES3; OBD"}
	CRC8SMBus      = Params{Name: "crc8_smbus", Poly: 0x07, Uses: "System Management Bus, ATM HEC, ISDN HEC"}
	CRC8WCDMA      = Params{Name: "crc8_wcdma", Poly: 0x9B, Reflect: true, Uses: "mobile networks"}
)

// Algorithms lists every catalogued parametrization, ordered by name.
var Algorithms = []Params{
	CRC8AutosarF,
	CRC8Bluetooth,
	CRC8CDMA2000,
	CRC8DARC,
	CRC8DVBS2,
	CRC8EBU,
	CRC8GSMA,
	CRC8GSMB,
	CRC8Hitag,
	CRC8ICode,
	CRC8ITU,
	CRC8LTE,
	CRC8Maxim,
	CRC8Mifare,
	CRC8NRSC5,
	CRC8OpenSafety,
	CRC8ROHC,
	CRC8SAEJ1850,
	CRC8SAEJ1850Z,
	CRC8SMBus,
	CRC8WCDMA,
}

// ByName returns the catalogued parametrization with the given name.
func ByName(name string) (Params, bool) {
	for _, p := range Algorithms {
		if p.Name == name {
			return p, true
		}
	}
	return Params{}, false
}
