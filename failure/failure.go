package failure

// NewModel precomputes the 16-entry failure-probability lookup table from
// the given thresholds and CPTs (defaults if no options given).
func NewModel(opts ...Option) *Model {
	cfg := modelConfig{
		thresholds: DefaultThresholds(),
		windCPT:    DefaultWindCPT,
		waveCPT:    DefaultWaveCPT,
		failCPT:    DefaultFailCPT,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	m := &Model{
		thresholds: cfg.thresholds,
		windCPT:    cfg.windCPT,
		waveCPT:    cfg.waveCPT,
		failCPT:    cfg.failCPT,
	}
	m.buildLookup()

	return m
}

// buildLookup fills the 16-entry table, one entry per (twsHi, twaLo, whHi,
// wdLo) combination, by marginalizing the two intermediate condition nodes
// out of the network: for each of the four (WindCond, WaveCond) binary
// assignments, weight P(Fail=1 | WaveCond, WindCond) by the probability of
// that assignment given the inputs, and sum.
func (m *Model) buildLookup() {
	for idx := 0; idx < 16; idx++ {
		twsHi := idx & 1
		twaLo := (idx >> 1) & 1
		whHi := (idx >> 2) & 1
		wdLo := (idx >> 3) & 1

		pWind := m.windCPT[twaLo][twsHi]
		pWave := m.waveCPT[whHi][wdLo]

		var pFail float64
		for wind := 0; wind <= 1; wind++ {
			pw := pWind
			if wind == 0 {
				pw = 1 - pWind
			}
			for wave := 0; wave <= 1; wave++ {
				pv := pWave
				if wave == 0 {
					pv = 1 - pWave
				}
				pFail += pw * pv * m.failCPT[wave][wind]
			}
		}
		m.lookup[idx] = pFail
	}
}

// binarize turns the four raw environmental readings into the lookup
// table's 4-bit index: bit0=TWS_hi, bit1=TWA_lo, bit2=WH_hi, bit3=WD_lo.
func (m *Model) binarize(tws, twaRel, wh, wdRel float64) int {
	idx := 0
	if tws > m.thresholds.TWSHigh {
		idx |= 1
	}
	if twaRel < m.thresholds.TWALowDeg {
		idx |= 2
	}
	if wh > m.thresholds.WaveHeightHigh {
		idx |= 4
	}
	if wdRel >= m.thresholds.WaveDirLowDeg {
		idx |= 8
	}

	return idx
}

// PFail returns the predicted probability of craft failure ∈ [0, 1] for
// the given true wind speed (knots), absolute relative wind angle
// (degrees), wave height (meters), and absolute relative wave direction
// (degrees). PFail is total: every combination of inputs maps to one of
// the 16 precomputed entries.
func (m *Model) PFail(tws, twaRel, wh, wdRel float64) float64 {
	return m.lookup[m.binarize(tws, twaRel, wh, wdRel)]
}

// Thresholds returns the discretization thresholds this model was built
// with.
func (m *Model) Thresholds() Thresholds {
	return m.thresholds
}
