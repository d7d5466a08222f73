package toolxml

import (
	"strings"
	"testing"
)

const bwaXML = `<tool id="bwa_mem" name="BWA-MEM" version="0.7.17+galaxy1" profile="20.01">
    <description>maps medium and long reads</description>
    <xrefs>
        <xref type="bio.tools">bwa</xref>
    </xrefs>
    <edam_operations>
        <edam_operation>Read mapping</edam_operation>
    </edam_operations>
    <edam_topics>
        <edam_topic>Mapping</edam_topic>
    </edam_topics>
    <requirements>
        <requirement type="package" version="0.7.17">bwa</requirement>
        <requirement type="package" version="1.9">samtools</requirement>
    </requirements>
    <command><![CDATA[bwa mem ...]]></command>
</tool>`

func TestParse(t *testing.T) {
	w, err := Parse([]byte(bwaXML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if w.ID != "bwa_mem" || w.Name != "BWA-MEM" || w.Version != "0.7.17+galaxy1" {
		t.Errorf("unexpected tool attrs: %+v", w)
	}
	if w.Description != "maps medium and long reads" {
		t.Errorf("description: %q", w.Description)
	}
	if got := w.BioToolsXref(); got != "bwa" {
		t.Errorf("BioToolsXref: %q", got)
	}
	if len(w.EDAMOps) != 1 || w.EDAMOps[0] != "Read mapping" {
		t.Errorf("EDAM operations: %v", w.EDAMOps)
	}
	if len(w.EDAMTopics) != 1 || w.EDAMTopics[0] != "Mapping" {
		t.Errorf("EDAM topics: %v", w.EDAMTopics)
	}
	name, version := w.CondaPackage()
	if name != "bwa" || version != "0.7.17" {
		t.Errorf("CondaPackage: %q %q", name, version)
	}
}

func TestParse_NoXrefs(t *testing.T) {
	w, err := Parse([]byte(`<tool id="t" name="T" version="1.0"/>`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := w.BioToolsXref(); got != "" {
		t.Errorf("expected empty xref, got %q", got)
	}
	if name, _ := w.CondaPackage(); name != "" {
		t.Errorf("expected no conda package, got %q", name)
	}
}

func TestParse_MacrosRootRejected(t *testing.T) {
	_, err := Parse([]byte(`<macros><token name="@VERSION@">1.0</token></macros>`))
	if err == nil {
		t.Error("expected error for non-tool root element")
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse([]byte("<tool id=")); err == nil {
		t.Error("expected error for truncated XML")
	}
	if _, err := Parse([]byte(strings.Repeat("x", 10))); err == nil {
		t.Error("expected error for non-XML content")
	}
}

func TestIsToolFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"tools/bwa/bwa_mem.xml", true},
		{"tools/bwa/macros.xml", false},
		{"tools/bwa/bwa_macros.xml", false},
		{"tools/bwa/.shed.yml", false},
		{"tools/bwa/test-data/out.bam", false},
		{"tools/bwa/BWA_ALN.XML", true},
	}
	for _, tt := range tests {
		if got := IsToolFile(tt.path); got != tt.want {
			t.Errorf("IsToolFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
