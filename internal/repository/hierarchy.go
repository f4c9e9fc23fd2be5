package repository

import (
	"context"

	"github.com/ANIKETSHETTY47/hvac-equipment-db/internal/domain"
)

// LoadAHUTree reloads an AHU and everything below it. Readings of every node
// are limited to w. Each equipment level costs one query plus one batched
// reading query, independent of the number of siblings.
func (r *Repos) LoadAHUTree(ctx context.Context, ahuNumber int64, w domain.TimeRange) (*domain.AHUTree, error) {
	ahu, err := r.GetAHU(ctx, ahuNumber)
	if err != nil {
		return nil, err
	}
	tree := domain.NewAHUTree(*ahu)

	if tree.Readings, err = r.ListAHUReadings(ctx, ahuNumber, w); err != nil {
		return nil, err
	}

	filters, err := r.ListFiltersByAHU(ctx, ahuNumber)
	if err != nil {
		return nil, err
	}
	filterReadings, err := listReadingsIn[domain.FilterReading](ctx, r, filterReadingTable, keysOf(filters, func(f domain.Filter) int64 { return f.FilterID }), w)
	if err != nil {
		return nil, err
	}
	byFilter := groupBy(filterReadings, func(rd domain.FilterReading) int64 { return rd.FilterID })
	for _, f := range filters {
		tree.Filters = append(tree.Filters, domain.FilterNode{Filter: f, Readings: orEmpty(byFilter[f.FilterID])})
	}

	fans, err := r.ListFansByAHU(ctx, ahuNumber)
	if err != nil {
		return nil, err
	}
	fanReadings, err := listReadingsIn[domain.FanReading](ctx, r, fanReadingTable, keysOf(fans, func(f domain.Fan) int64 { return f.FanID }), w)
	if err != nil {
		return nil, err
	}
	byFan := groupBy(fanReadings, func(rd domain.FanReading) int64 { return rd.FanID })
	for _, f := range fans {
		tree.Fans = append(tree.Fans, domain.FanNode{Fan: f, Readings: orEmpty(byFan[f.FanID])})
	}

	dampers, err := r.ListDampersByAHU(ctx, ahuNumber)
	if err != nil {
		return nil, err
	}
	damperReadings, err := listReadingsIn[domain.DamperReading](ctx, r, damperReadingTable, keysOf(dampers, func(d domain.Damper) int64 { return d.DamperID }), w)
	if err != nil {
		return nil, err
	}
	byDamper := groupBy(damperReadings, func(rd domain.DamperReading) int64 { return rd.DamperID })
	for _, d := range dampers {
		tree.Dampers = append(tree.Dampers, domain.DamperNode{Damper: d, Readings: orEmpty(byDamper[d.DamperID])})
	}

	vavs, err := r.ListVAVsByAHU(ctx, ahuNumber)
	if err != nil {
		return nil, err
	}
	vavIDs := keysOf(vavs, func(v domain.VAV) int64 { return v.VAVID })
	vavReadings, err := listReadingsIn[domain.VAVReading](ctx, r, vavReadingTable, vavIDs, w)
	if err != nil {
		return nil, err
	}
	vavHECs, err := r.listHECsIn(ctx, domain.ParentVAV, vavIDs)
	if err != nil {
		return nil, err
	}
	vavTerminals, err := r.listThermafusersIn(ctx, domain.ParentVAV, vavIDs)
	if err != nil {
		return nil, err
	}

	savs, err := r.ListSAVsByAHU(ctx, ahuNumber)
	if err != nil {
		return nil, err
	}
	savIDs := keysOf(savs, func(s domain.SAV) int64 { return s.SAVID })
	savReadings, err := listReadingsIn[domain.SAVReading](ctx, r, savReadingTable, savIDs, w)
	if err != nil {
		return nil, err
	}
	savHECs, err := r.listHECsIn(ctx, domain.ParentSAV, savIDs)
	if err != nil {
		return nil, err
	}
	savTerminals, err := r.listThermafusersIn(ctx, domain.ParentSAV, savIDs)
	if err != nil {
		return nil, err
	}

	ahuHECs, err := r.ListHECsByParent(ctx, domain.CoilOnAHU(ahuNumber))
	if err != nil {
		return nil, err
	}

	var allHECs []domain.HEC
	allHECs = append(allHECs, ahuHECs...)
	allHECs = append(allHECs, vavHECs...)
	allHECs = append(allHECs, savHECs...)
	hecReadings, err := listReadingsIn[domain.HECReading](ctx, r, hecReadingTable, keysOf(allHECs, func(h domain.HEC) int64 { return h.HECID }), w)
	if err != nil {
		return nil, err
	}
	byHEC := groupBy(hecReadings, func(rd domain.HECReading) int64 { return rd.HECID })

	var allTerminals []domain.Thermafuser
	allTerminals = append(allTerminals, vavTerminals...)
	allTerminals = append(allTerminals, savTerminals...)
	terminalReadings, err := listReadingsIn[domain.ThermafuserReading](ctx, r, thermafuserReadingTable, keysOf(allTerminals, func(t domain.Thermafuser) int64 { return t.ThermafuserID }), w)
	if err != nil {
		return nil, err
	}
	byTerminal := groupBy(terminalReadings, func(rd domain.ThermafuserReading) int64 { return rd.ThermafuserID })

	hecNodes := func(hecs []domain.HEC) []domain.HECNode {
		out := []domain.HECNode{}
		for _, h := range hecs {
			out = append(out, domain.HECNode{HEC: h, Readings: orEmpty(byHEC[h.HECID])})
		}
		return out
	}
	terminalNodes := func(ts []domain.Thermafuser) []domain.ThermafuserNode {
		out := []domain.ThermafuserNode{}
		for _, t := range ts {
			out = append(out, domain.ThermafuserNode{Thermafuser: t, Readings: orEmpty(byTerminal[t.ThermafuserID])})
		}
		return out
	}

	hecsByVAV := groupBy(vavHECs, func(h domain.HEC) int64 { return h.Parent.ID() })
	terminalsByVAV := groupBy(vavTerminals, func(t domain.Thermafuser) int64 { return t.Parent.ID() })
	byVAV := groupBy(vavReadings, func(rd domain.VAVReading) int64 { return rd.VAVID })
	for _, v := range vavs {
		tree.VAVs = append(tree.VAVs, domain.VAVNode{
			VAV:          v,
			Readings:     orEmpty(byVAV[v.VAVID]),
			HECs:         hecNodes(hecsByVAV[v.VAVID]),
			Thermafusers: terminalNodes(terminalsByVAV[v.VAVID]),
		})
	}

	hecsBySAV := groupBy(savHECs, func(h domain.HEC) int64 { return h.Parent.ID() })
	terminalsBySAV := groupBy(savTerminals, func(t domain.Thermafuser) int64 { return t.Parent.ID() })
	bySAV := groupBy(savReadings, func(rd domain.SAVReading) int64 { return rd.SAVID })
	for _, s := range savs {
		tree.SAVs = append(tree.SAVs, domain.SAVNode{
			SAV:          s,
			Readings:     orEmpty(bySAV[s.SAVID]),
			HECs:         hecNodes(hecsBySAV[s.SAVID]),
			Thermafusers: terminalNodes(terminalsBySAV[s.SAVID]),
		})
	}

	tree.HECs = hecNodes(ahuHECs)
	return tree, nil
}

func keysOf[T any](items []T, key func(T) int64) []int64 {
	out := make([]int64, 0, len(items))
	for _, it := range items {
		out = append(out, key(it))
	}
	return out
}

func groupBy[T any](items []T, key func(T) int64) map[int64][]T {
	out := make(map[int64][]T)
	for _, it := range items {
		k := key(it)
		out[k] = append(out[k], it)
	}
	return out
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
