package rules

// Copper value of each coin
const (
	CopperPerPlatinum = 1000
	CopperPerGold     = 100
	CopperPerElectrum = 50
	CopperPerSilver   = 10
)

// CoinsPerPound is how many coins of any kind weigh one pound
const CoinsPerPound = 50

// Currency is a purse of coins
type Currency struct {
	PP int `json:"pp"`
	GP int `json:"gp"`
	EP int `json:"ep"`
	SP int `json:"sp"`
	CP int `json:"cp"`
}

// TotalCopper is the purse value in copper pieces
func (c Currency) TotalCopper() int {
	return c.PP*CopperPerPlatinum + c.GP*CopperPerGold + c.EP*CopperPerElectrum + c.SP*CopperPerSilver + c.CP
}

// TotalGold is the purse value in gold pieces
func (c Currency) TotalGold() float64 {
	return float64(c.TotalCopper()) / CopperPerGold
}

// TotalCoins counts individual coins
func (c Currency) TotalCoins() int {
	return c.PP + c.GP + c.EP + c.SP + c.CP
}

// CoinWeight is the weight of the purse in pounds
func (c Currency) CoinWeight() float64 {
	return float64(c.TotalCoins()) / CoinsPerPound
}

// Consolidate exchanges the purse into the fewest platinum, gold, silver and copper coins of the
// same value. Electrum is always exchanged away.
func (c Currency) Consolidate() Currency {
	return CurrencyFromCopper(c.TotalCopper())
}

// CurrencyFromCopper breaks a copper amount into pp/gp/sp/cp
func CurrencyFromCopper(copper int) Currency {
	var out Currency
	out.PP, copper = copper/CopperPerPlatinum, copper%CopperPerPlatinum
	out.GP, copper = copper/CopperPerGold, copper%CopperPerGold
	out.SP, copper = copper/CopperPerSilver, copper%CopperPerSilver
	out.CP = copper
	return out
}

// Add returns the coin-wise sum of two purses
func (c Currency) Add(o Currency) Currency {
	return Currency{PP: c.PP + o.PP, GP: c.GP + o.GP, EP: c.EP + o.EP, SP: c.SP + o.SP, CP: c.CP + o.CP}
}
