package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"peerdiff/core/utils"
	"peerdiff/feature/peering"
	"peerdiff/feature/peering/reconcile"

	"github.com/olekukonko/tablewriter"
)

// Report output formats.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
)

// NoDifferencesMessage is printed when both sources agree.
const NoDifferencesMessage = "No differences between router config and RPSL"

func checkFormat(format string) error {
	switch format {
	case FormatText, FormatTable, FormatJSON:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text, table or json)", format)
	}
}

// render writes res to w in the requested format.
func render(w io.Writer, res *peering.Result, format string) error {
	switch format {
	case FormatText:
		return renderText(w, res)
	case FormatTable:
		return renderTable(w, res)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	default:
		return checkFormat(format)
	}
}

func renderText(w io.Writer, res *peering.Result) error {
	for _, s := range res.RouterImports {
		fmt.Fprintf(w, "Imported %d peers from %s (%d new)\n", s.Matched, s.Source, s.Inserted)
	}
	if s := res.RegistryImport; s != nil {
		if s.Error != "" {
			fmt.Fprintf(w, "Could not query whois at %s: %s\n", s.Source, s.Error)
		}
		fmt.Fprintf(w, "Imported %d peers from whois (%d new)\n", s.Matched, s.Inserted)
	}

	report := res.Report
	if report == nil {
		return nil
	}

	for _, f := range report.Findings {
		switch f.Kind {
		case reconcile.KindRouterOnly:
			fmt.Fprintf(w, "Peer AS%d(%s) is in router config (%s) but not in RPSL\n", f.ASN, label(f), f.NeighborAddress)
			if f.Stanza != "" {
				fmt.Fprintln(w, f.Stanza)
			}
		case reconcile.KindRegistryOnly:
			fmt.Fprintf(w, "Peer AS%d(%s) is in whois but not in router config\n", f.ASN, f.Accept)
		}
	}

	if report.NoDifferences {
		fmt.Fprintln(w, NoDifferencesMessage)
		return nil
	}
	_, err := fmt.Fprintln(w, report.Caveat)
	return err
}

func renderTable(w io.Writer, res *peering.Result) error {
	report := res.Report
	if report == nil {
		return renderText(w, res)
	}

	rows := make([][]string, 0, len(report.Findings)+len(report.Matched))
	for _, f := range report.Findings {
		switch f.Kind {
		case reconcile.KindRouterOnly:
			set := ""
			if f.Info != nil {
				set = f.Info.AnnouncedSet
			}
			rows = append(rows, []string{utils.FormatASN(f.ASN), string(f.Kind), f.NeighborAddress, label(f), set})
		case reconcile.KindRegistryOnly:
			rows = append(rows, []string{utils.FormatASN(f.ASN), string(f.Kind), "", "", f.Accept})
		}
	}
	for _, m := range report.Matched {
		rows = append(rows, []string{utils.FormatASN(m.ASN), "matched", m.NeighborAddress, m.PeerGroup, m.Accept})
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"ASN", "STATUS", "NEIGHBOR", "LABEL", "POLICY"})
	table.AppendBulk(rows)
	table.Render()

	s := report.Summary
	fmt.Fprintf(w, "\n%d router peers, %d registry peers, %d matched, %d discrepancies\n",
		s.RouterPeers, s.RegistryPeers, s.Matched, s.Discrepancies)
	if report.NoDifferences {
		fmt.Fprintln(w, NoDifferencesMessage)
		return nil
	}
	_, err := fmt.Fprintln(w, report.Caveat)
	return err
}

func label(f reconcile.Finding) string {
	if f.PeerGroup != "" {
		return f.PeerGroup
	}
	return f.Description
}
