package lineid

// Built-in calibration catalogs for common extragalactic work. Rest
// wavelengths are in Angstroms.

func mustCatalog(lines []Line) *Catalog {
	c, err := NewCatalog(lines)
	if err != nil {
		panic(err)
	}

	return c
}

// VacuumBasic returns a minimal catalog of the strongest optical emission
// lines: the O II doublet blend, Hbeta, the O III doublet, and Halpha.
// Balmer lines are named with ASCII transliterations (Hbeta for Hβ) so
// catalog names survive plain-text reports and CSV round trips.
func VacuumBasic() *Catalog {
	return mustCatalog([]Line{
		{Name: "O II", Rest: 3726.03},
		{Name: "Hbeta", Rest: 4861.33},
		{Name: "O III-1", Rest: 4958.92},
		{Name: "O III-2", Rest: 5006.84},
		{Name: "Halpha", Rest: 6563.00},
	})
}

// Vacuum returns a comprehensive catalog of common galaxy emission and
// absorption features, ordered by wavelength.
func Vacuum() *Catalog {
	return mustCatalog([]Line{
		{Name: "O II", Rest: 3726.03},
		{Name: "Ca K", Rest: 3933.66},
		{Name: "Ca H", Rest: 3968.47},
		{Name: "Hdelta", Rest: 4101.74},
		{Name: "Hgamma", Rest: 4340.47},
		{Name: "Hbeta", Rest: 4861.33},
		{Name: "O III-1", Rest: 4958.92},
		{Name: "O III-2", Rest: 5006.84},
		{Name: "Mg I", Rest: 5175.00},
		{Name: "Na I", Rest: 5894.00},
		{Name: "Halpha", Rest: 6563.00},
		{Name: "S II-1", Rest: 6716.47},
		{Name: "S II-2", Rest: 6730.85},
	})
}
